package view

import "strings"

// Routes is the bidirectional mapping between URL paths and views.
// It is built once at startup and never mutated afterwards, so it is safe
// for concurrent use. For every registered view the mapping is an exact
// inverse: PathFor(ResolveView(p)) == p.
type Routes struct {
	base   string
	byPath map[string]View
	byView map[View]string
}

// NewRoutes builds the route table under the given base path prefix.
// base is empty when the application is deployed at the domain root;
// a deployment under a subpath passes the detected prefix instead.
func NewRoutes(base string) *Routes {
	base = strings.TrimSuffix(base, "/")
	r := &Routes{
		base:   base,
		byPath: make(map[string]View),
		byView: make(map[View]string),
	}
	for _, v := range All() {
		p := "/" + string(v)
		r.byPath[p] = v
		r.byView[v] = p
	}
	return r
}

// BasePath returns the deployment prefix the table was built with.
func (r *Routes) BasePath() string {
	return r.base
}

// PathFor returns the full URL path for a registered view, including the
// base prefix. Unknown views map to the default view's path.
func (r *Routes) PathFor(v View) string {
	p, ok := r.byView[v]
	if !ok {
		p = r.byView[Default]
	}
	return r.base + p
}

// ResolveView maps a URL path to a view: exact match first, then the
// longest registered prefix, then the default view. It never fails;
// malformed and unknown paths all land on Default.
func (r *Routes) ResolveView(path string) View {
	p := r.strip(path)
	if v, ok := r.byPath[p]; ok {
		return v
	}
	var (
		best     int
		bestView = Default
	)
	for rp, v := range r.byPath {
		if strings.HasPrefix(p, rp+"/") && len(rp) > best {
			best = len(rp)
			bestView = v
		}
	}
	return bestView
}

// strip removes the base prefix and any trailing slash so that both
// "/app/banks" and "/banks" resolve identically under base "/app".
func (r *Routes) strip(path string) string {
	if r.base != "" && strings.HasPrefix(path, r.base) {
		path = path[len(r.base):]
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if path == "" {
		path = "/"
	}
	return path
}

// DetectBasePath derives the deployment prefix from the path the
// application was loaded at. "/app/banks" yields "/app"; a path that does
// not end in a registered view segment yields the root deployment "".
func DetectBasePath(current string) string {
	current = strings.TrimSuffix(current, "/")
	for _, v := range All() {
		seg := "/" + string(v)
		if current == seg {
			return ""
		}
		if strings.HasSuffix(current, seg) {
			return strings.TrimSuffix(current, seg)
		}
	}
	return ""
}
