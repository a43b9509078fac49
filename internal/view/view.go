package view

// View identifies one of the application's mutually exclusive UI panels.
type View string

// Registered views. The set is closed: views are never created or
// destroyed at runtime, only re-selected.
const (
	Dashboard    View = "dashboard"
	Banks        View = "banks"
	Accounts     View = "accounts"
	Transactions View = "transactions"
	Reports      View = "reports"
	Advisor      View = "advisor"
	Settings     View = "settings"
)

// Default is the view selected when a path or view identifier cannot be
// resolved. Unknown input is a normal condition, not an error.
const Default = Dashboard

// All returns every registered view in display order.
func All() []View {
	return []View{Dashboard, Banks, Accounts, Transactions, Reports, Advisor, Settings}
}

// Known reports whether v belongs to the registered view set.
func Known(v View) bool {
	switch v {
	case Dashboard, Banks, Accounts, Transactions, Reports, Advisor, Settings:
		return true
	}
	return false
}
