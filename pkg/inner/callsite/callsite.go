package callsite

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"strings"
	"sync"
)

// Call describes a resolved call site.
type Call struct {
	Text string // verbatim source text of the requested argument, "" when unavailable
	File string
	Line int
}

// Arg walks the current stack looking for a frame of the function named
// fn (package-qualified suffix match, generic instantiations included)
// and resolves the call site one frame above it. It returns the verbatim
// source text of the arg-th argument of that call, read from the caller's
// source file. It reports false when no frame for fn is on the stack.
//
// Text can be empty even on success: the source file may be missing at
// run time (trimmed or relocated build) or the call may not be locatable
// on the recorded line.
func Arg(fn string, arg int) (Call, bool) {
	pc := make([]uintptr, 64)
	n := runtime.Callers(2, pc)
	if n == 0 {
		return Call{}, false
	}

	frames := runtime.CallersFrames(pc[:n])
	matched := false
	for {
		frame, more := frames.Next()
		if matched && frame.File != "" {
			c := Call{File: frame.File, Line: frame.Line}
			c.Text = argText(frame.File, frame.Line, fn, arg)
			return c, true
		}
		if matchesFunc(frame.Function, fn) {
			matched = true
		}
		if !more {
			return Call{}, false
		}
	}
}

// matchesFunc reports whether the fully qualified runtime function name
// refers to fn, e.g. "github.com/ib-77/inner.Extract[...]" matches
// "Extract".
func matchesFunc(qualified, fn string) bool {
	if qualified == "" || fn == "" {
		return false
	}
	if i := strings.IndexByte(qualified, '['); i >= 0 {
		qualified = qualified[:i]
	}
	return strings.HasSuffix(qualified, "."+fn)
}

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
	err  error
}

var (
	mu    sync.Mutex
	files = map[string]*parsedFile{}
)

func load(path string) *parsedFile {
	mu.Lock()
	defer mu.Unlock()

	if pf, ok := files[path]; ok {
		return pf
	}

	pf := &parsedFile{fset: token.NewFileSet()}
	pf.src, pf.err = os.ReadFile(path)
	if pf.err == nil {
		pf.file, pf.err = parser.ParseFile(pf.fset, path, pf.src, 0)
	}
	files[path] = pf
	return pf
}

// argText finds the call to fn covering the given line and slices the
// arg-th argument's source text out of the file.
func argText(path string, line int, fn string, arg int) string {
	pf := load(path)
	if pf.err != nil {
		return ""
	}

	var out string
	ast.Inspect(pf.file, func(n ast.Node) bool {
		if out != "" {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		from := pf.fset.Position(call.Pos()).Line
		to := pf.fset.Position(call.End()).Line
		if line < from || line > to || calleeName(call.Fun) != fn {
			return true
		}
		if arg < 0 || arg >= len(call.Args) {
			return false
		}
		e := call.Args[arg]
		start := pf.fset.Position(e.Pos()).Offset
		end := pf.fset.Position(e.End()).Offset
		if start >= 0 && end <= len(pf.src) && start < end {
			out = string(pf.src[start:end])
		}
		return false
	})
	return out
}

func calleeName(e ast.Expr) string {
	switch f := e.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	case *ast.ParenExpr:
		return calleeName(f.X)
	}
	return ""
}
