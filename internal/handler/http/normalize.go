package http

import "strings"

// staticPaths are routes whose literal path is safe as a metric label.
var staticPaths = map[string]struct{}{
	"/":              {},
	"/datasets":      {},
	"/admin/refresh": {},
	"/admin/status":  {},
	"/health":        {},
	"/health/ready":  {},
	"/metrics":       {},
}

// unmatchedPath is the label bucket for paths outside the route table.
// Unknown paths must collapse to a single value: dataset keys are free-form
// strings, so labeling raw paths would let clients mint unbounded label
// children on the request metrics.
const unmatchedPath = "/unmatched"

// normalizePath maps a request path to its route pattern for metric
// labeling. /datasets/{key} and /datasets/{key}/export collapse to their
// templates, known static routes pass through, everything else lands in
// the unmatched bucket. Query strings and trailing slashes are stripped
// first.
func normalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}

	if rest, ok := strings.CutPrefix(path, "/datasets/"); ok && rest != "" {
		key, tail, nested := strings.Cut(rest, "/")
		switch {
		case key == "":
			return unmatchedPath
		case !nested:
			return "/datasets/{key}"
		case tail == "export":
			return "/datasets/{key}/export"
		}
	}

	return unmatchedPath
}
