package implement

import (
	"errors"
	"testing"

	"github.com/bft-labs/implement/pkg/stack"
)

// fakeModules implements ModuleLoader with scripted results and call counters.
type fakeModules struct {
	resolveCalls []string
	loadCalls    []string

	resolveFn func(path string) (string, error)
	loadFn    func(path string) (any, error)
}

func (f *fakeModules) Resolve(path string) (string, error) {
	f.resolveCalls = append(f.resolveCalls, path)
	if f.resolveFn == nil {
		return path, nil
	}
	return f.resolveFn(path)
}

func (f *fakeModules) Load(path string) (any, error) {
	f.loadCalls = append(f.loadCalls, path)
	if f.loadFn == nil {
		return path, nil
	}
	return f.loadFn(path)
}

// fakePaths implements PathResolver and records its inputs.
type fakePaths struct {
	dirCalls     []string
	resolveCalls [][2]string

	dir      string
	resolved string
}

func (f *fakePaths) Dir(path string) string {
	f.dirCalls = append(f.dirCalls, path)
	return f.dir
}

func (f *fakePaths) Resolve(baseDir, specifier string) string {
	f.resolveCalls = append(f.resolveCalls, [2]string{baseDir, specifier})
	return f.resolved
}

// countingStack wraps a fixed stack and records every capture.
type countingStack struct {
	files      []string
	calls      int
	specifiers []string
}

func (c *countingStack) CaptureStack(specifier string) []Frame {
	c.calls++
	c.specifiers = append(c.specifiers, specifier)
	return stack.NewFixed(c.files...).CaptureStack(specifier)
}

const (
	helperFile = "/user/path/lib/implement/loader.go"
	callerFile = "/user/path/to/caller/main.go"
	callerDir  = "/user/path/to/caller/"
)

type harness struct {
	modules *fakeModules
	paths   *fakePaths
	stack   *countingStack
	loader  *Loader
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		modules: &fakeModules{
			resolveFn: func(string) (string, error) { return "/user/path/config/index.go", nil },
		},
		paths: &fakePaths{dir: callerDir, resolved: "/user/path/config"},
		stack: &countingStack{files: []string{helperFile, helperFile, callerFile}},
	}
	all := append([]Option{
		WithModuleLoader(h.modules),
		WithPathResolver(h.paths),
		WithStackIntrospector(h.stack),
	}, opts...)
	l, err := New(all...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h.loader = l
	return h
}

func (h *harness) collaboratorCalls() int {
	return len(h.modules.resolveCalls) + len(h.modules.loadCalls) +
		len(h.paths.dirCalls) + len(h.paths.resolveCalls) + h.stack.calls
}

func TestLoader_NormalizesCallerPath(t *testing.T) {
	h := newHarness(t)

	if _, err := h.loader.Load("../../config"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if h.stack.calls != 1 {
		t.Errorf("stack captured %d times, want 1", h.stack.calls)
	}
	if len(h.paths.dirCalls) != 1 || h.paths.dirCalls[0] != callerFile {
		t.Errorf("Dir() calls = %v, want [%s]", h.paths.dirCalls, callerFile)
	}
	if len(h.paths.resolveCalls) != 1 || h.paths.resolveCalls[0] != [2]string{callerDir, "../../config"} {
		t.Errorf("Resolve() calls = %v", h.paths.resolveCalls)
	}
	if len(h.modules.resolveCalls) != 1 || h.modules.resolveCalls[0] != "/user/path/config" {
		t.Errorf("probe calls = %v, want [/user/path/config]", h.modules.resolveCalls)
	}
	if got := h.collaboratorCalls(); got != 5 {
		t.Errorf("collaborator calls = %d, want 5", got)
	}
}

func TestLoader_ImplementationPathSuffix(t *testing.T) {
	tests := []struct {
		name   string
		suffix []string
		opts   []Option
		want   string
	}{
		{name: "default suffix", want: "/user/path/config/index_implementation"},
		{name: "custom suffix", suffix: []string{"_foo"}, want: "/user/path/config/index_foo"},
		{name: "empty suffix falls back", suffix: []string{""}, want: "/user/path/config/index_implementation"},
		{name: "instance suffix", opts: []Option{WithSuffix("_mock")}, want: "/user/path/config/index_mock"},
		{name: "call suffix beats instance suffix", suffix: []string{"_foo"}, opts: []Option{WithSuffix("_mock")}, want: "/user/path/config/index_foo"},
		{name: "empty instance suffix keeps default", opts: []Option{WithSuffix("")}, want: "/user/path/config/index_implementation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.opts...)
			if _, err := h.loader.Load("../../config", tt.suffix...); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(h.modules.loadCalls) != 1 || h.modules.loadCalls[0] != tt.want {
				t.Errorf("load calls = %v, want [%s]", h.modules.loadCalls, tt.want)
			}
		})
	}
}

func TestLoader_ReturnsLoadedModule(t *testing.T) {
	h := newHarness(t)
	want := &struct{ Name string }{Name: "impl"}
	h.modules.loadFn = func(string) (any, error) { return want, nil }

	got, err := h.loader.Load("../../config")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load() = %v, want %v", got, want)
	}
}

func TestLoader_PassesSpecifierToCallerLocator(t *testing.T) {
	h := newHarness(t)
	if _, err := h.loader.Load("../foo/bar"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(h.stack.specifiers) != 1 || h.stack.specifiers[0] != "../foo/bar" {
		t.Errorf("specifiers = %v, want [../foo/bar]", h.stack.specifiers)
	}
}

func TestLoader_InvalidArgument(t *testing.T) {
	for _, spec := range []any{nil, 42, 3.14, []byte("config"), struct{}{}, new(string)} {
		h := newHarness(t)
		_, err := h.loader.Load(spec)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Load(%#v) error = %v, want ErrInvalidArgument", spec, err)
			continue
		}
		if err.Error() != "Module path must be a string" {
			t.Errorf("message = %q", err.Error())
		}
		if got := h.collaboratorCalls(); got != 0 {
			t.Errorf("Load(%#v) invoked %d collaborators, want 0", spec, got)
		}

		if _, err := h.loader.Resolve(spec); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Resolve(%#v) error = %v, want ErrInvalidArgument", spec, err)
		}
	}
}

func TestLoader_CallerUnresolvable(t *testing.T) {
	tests := []struct {
		name  string
		files []string
	}{
		{name: "empty stack", files: nil},
		{name: "single frame", files: []string{helperFile}},
		{name: "only helper frames", files: []string{helperFile, helperFile, helperFile}},
		{name: "caller without file name", files: []string{helperFile, ""}},
		{name: "module-relative caller", files: []string{"loader.go", "github.com/x/y/main.go"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.stack.files = tt.files

			_, err := h.loader.Load("foo")
			if !errors.Is(err, ErrCallerUnresolvable) {
				t.Fatalf("Load() error = %v, want ErrCallerUnresolvable", err)
			}
			if err.Error() != "Unable to require implementation" {
				t.Errorf("message = %q", err.Error())
			}
			if n := len(h.paths.dirCalls) + len(h.paths.resolveCalls) + len(h.modules.resolveCalls) + len(h.modules.loadCalls); n != 0 {
				t.Errorf("resolution attempted %d times, want 0", n)
			}
		})
	}
}

func TestLoader_NotFoundOnProbe(t *testing.T) {
	h := newHarness(t)
	probeErr := errors.New("cannot find /user/path/config")
	h.modules.resolveFn = func(string) (string, error) {
		return "", errors.Join(ErrModuleNotFound, probeErr)
	}

	_, err := h.loader.Load("../../config", "_foo")
	if err == nil {
		t.Fatal("Load() error = nil")
	}
	if got, want := err.Error(), `No implementation file found for module: "../../config"`; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrImplementationNotFound) {
		t.Error("errors.Is(err, ErrImplementationNotFound) = false")
	}
	if !errors.Is(err, probeErr) {
		t.Error("underlying probe error not reachable through Unwrap")
	}
	var nf *ImplementationNotFoundError
	if !errors.As(err, &nf) || nf.Specifier != "../../config" {
		t.Errorf("errors.As = %+v", nf)
	}
	if len(h.modules.loadCalls) != 0 {
		t.Errorf("load called %d times after failed probe", len(h.modules.loadCalls))
	}
}

func TestLoader_NotFoundOnLoad(t *testing.T) {
	h := newHarness(t)
	h.modules.resolveFn = func(string) (string, error) { return "", nil }
	h.modules.loadFn = func(string) (any, error) { return nil, ErrModuleNotFound }

	_, err := h.loader.Load("../../config", "_foo")
	if got, want := err.Error(), `No implementation file found for module: "../../config"`; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestLoader_SpecifierQuotedVerbatim(t *testing.T) {
	h := newHarness(t)
	h.modules.resolveFn = func(string) (string, error) { return "", ErrModuleNotFound }

	spec := `..\odd "name"`
	_, err := h.loader.Load(spec)
	if got, want := err.Error(), `No implementation file found for module: "..\odd "name""`; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestLoader_UnknownErrorsPropagate(t *testing.T) {
	unknown := errors.New("I am an unknown error")

	t.Run("from probe", func(t *testing.T) {
		h := newHarness(t)
		h.modules.resolveFn = func(string) (string, error) { return "", unknown }

		_, err := h.loader.Load("../../config", "_foo")
		if err != unknown {
			t.Errorf("Load() error = %v, want the original error value", err)
		}
		if len(h.modules.loadCalls) != 0 {
			t.Error("load must not run after a failed probe")
		}
	})

	t.Run("from load", func(t *testing.T) {
		h := newHarness(t)
		h.modules.loadFn = func(string) (any, error) { return nil, unknown }

		_, err := h.loader.Load("../../config")
		if err != unknown {
			t.Errorf("Load() error = %v, want the original error value", err)
		}
		if err.Error() != "I am an unknown error" {
			t.Errorf("message = %q", err.Error())
		}
	})
}

func TestLoader_Resolve(t *testing.T) {
	h := newHarness(t)
	h.modules.resolveFn = func(path string) (string, error) {
		if path == "/user/path/config" {
			return "/user/path/config/index.go", nil
		}
		return path + ".toml", nil
	}

	got, err := h.loader.Resolve("../../config")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := "/user/path/config/index_implementation.toml"; got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
	if len(h.modules.loadCalls) != 0 {
		t.Error("Resolve() must not load")
	}

	h.modules.resolveFn = func(path string) (string, error) {
		if path == "/user/path/config" {
			return "/user/path/config/index.go", nil
		}
		return "", ErrModuleNotFound
	}
	if _, err := h.loader.Resolve("../../config"); !errors.Is(err, ErrImplementationNotFound) {
		t.Errorf("Resolve() error = %v, want ErrImplementationNotFound", err)
	}
}

func TestImplementationPath(t *testing.T) {
	tests := []struct {
		resolved string
		suffix   string
		want     string
	}{
		{"/user/path/config/index.js", "_implementation", "/user/path/config/index_implementation"},
		{"/user/path/config/index.go", "_foo", "/user/path/config/index_foo"},
		{"/srv/app.v2/settings.prod.toml", "_impl", "/srv/app.v2/settings.prod_impl"},
		{"/srv/app.v2/Makefile", "_impl", "/srv/app.v2/Makefile_impl"},
		{"/srv/app/.env", "_local", "/srv/app/.env_local"},
		{"", "_implementation", "_implementation"},
	}
	for _, tt := range tests {
		if got := ImplementationPath(tt.resolved, tt.suffix); got != tt.want {
			t.Errorf("ImplementationPath(%q, %q) = %q, want %q", tt.resolved, tt.suffix, got, tt.want)
		}
	}
}

func TestIsVersionCompatible(t *testing.T) {
	tests := []struct {
		version, min string
		want         bool
	}{
		{"1.0.0", "1.0.0", true},
		{"1.1.0", "1.0.0", true},
		{"2.0.0", "1.9.9", true},
		{"1.0.0", "1.0.1", false},
		{"0.9.0", "1.0.0", false},
	}
	for _, tt := range tests {
		if got := isVersionCompatible(tt.version, tt.min); got != tt.want {
			t.Errorf("isVersionCompatible(%s, %s) = %v, want %v", tt.version, tt.min, got, tt.want)
		}
	}
	if err := validateModuleVersions(); err != nil {
		t.Errorf("validateModuleVersions() = %v", err)
	}
}
