package python

import (
	"reflect"
	"testing"

	errs "github.com/matzehuels/pyreqs/pkg/errors"
)

const samplePyproject = `[tool.poetry]
name = "demo"
version = "0.1.0"

[tool.poetry.dependencies]
python = ">=3.9,<3.12"
fastapi = "^0.100.0"
langchain = { version = "~0.0.300", extras = ["all"] }
pywin32 = { version = "^306", markers = "sys_platform == 'win32'" }
local-pkg = { path = "../local", develop = true }
zzz = "1.0"
aaa = "*"
gunicorn = { version = "^21.2.0", optional = true }

[tool.poetry.dependencies.uvicorn]
version = "^0.23.2"
extras = ["standard"]

[tool.poetry.group.dev.dependencies]
pytest = "^7.4"

[tool.poetry.extras]
deploy = ["gunicorn", "uvicorn"]
all = ["gunicorn", "missing-pkg"]
`

func TestParsePyproject(t *testing.T) {
	p, err := ParsePyproject(samplePyproject)
	if err != nil {
		t.Fatalf("ParsePyproject() error: %v", err)
	}

	var names []string
	for _, d := range p.Dependencies {
		names = append(names, d.Name)
	}
	want := []string{"python", "fastapi", "langchain", "pywin32", "local-pkg", "zzz", "aaa", "gunicorn", "uvicorn"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("dependency order = %v, want %v", names, want)
	}

	wantExtras := []ExtraGroup{
		{Name: "deploy", Members: []string{"gunicorn", "uvicorn"}},
		{Name: "all", Members: []string{"gunicorn", "missing-pkg"}},
	}
	if !reflect.DeepEqual(p.Extras, wantExtras) {
		t.Errorf("extras = %v, want %v", p.Extras, wantExtras)
	}

	spec, ok := p.Lookup("uvicorn")
	if !ok {
		t.Fatal("Lookup(uvicorn) not found")
	}
	if v, err := spec.Version(); err != nil || v != "^0.23.2" {
		t.Errorf("uvicorn version = %q, %v; want ^0.23.2", v, err)
	}

	spec, _ = p.Lookup("langchain")
	if c, err := spec.Constraint(); err != nil || c != ">=0.0.300,<0.1.0" {
		t.Errorf("langchain constraint = %q, %v; want >=0.0.300,<0.1.0", c, err)
	}

	if _, ok := p.Lookup("pytest"); ok {
		t.Error("dev group dependencies should not be read")
	}
	if _, ok := p.Lookup("missing-pkg"); ok {
		t.Error("Lookup(missing-pkg) should report false")
	}
}

func TestParsePyprojectNoExtras(t *testing.T) {
	p, err := ParsePyproject(`
[tool.poetry.dependencies]
foo = "^1.2.0"
bar = "~0.3"
`)
	if err != nil {
		t.Fatalf("ParsePyproject() error: %v", err)
	}
	if len(p.Dependencies) != 2 {
		t.Errorf("got %d dependencies, want 2", len(p.Dependencies))
	}
	if len(p.Extras) != 0 {
		t.Errorf("got %d extras groups, want 0", len(p.Extras))
	}
}

func TestParsePyprojectEmptyDependencies(t *testing.T) {
	p, err := ParsePyproject("[tool.poetry.dependencies]\n")
	if err != nil {
		t.Fatalf("ParsePyproject() error: %v", err)
	}
	if len(p.Dependencies) != 0 {
		t.Errorf("got %d dependencies, want 0", len(p.Dependencies))
	}
}

func TestParsePyprojectErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		code errs.Code
	}{
		{
			name: "malformed toml",
			text: "[tool.poetry\nname = ",
			code: errs.ErrCodeInvalidManifest,
		},
		{
			name: "no poetry section",
			text: "[project]\nname = \"demo\"\n",
			code: errs.ErrCodeMissingKey,
		},
		{
			name: "no dependencies",
			text: "[tool.poetry]\nname = \"demo\"\n",
			code: errs.ErrCodeMissingKey,
		},
		{
			name: "dependencies not a table",
			text: "[tool.poetry]\ndependencies = \"requests\"\n",
			code: errs.ErrCodeInvalidManifest,
		},
		{
			name: "dependencies an array",
			text: "[tool.poetry]\ndependencies = [\"a\"]\n",
			code: errs.ErrCodeInvalidManifest,
		},
		{
			name: "extras not a table",
			text: "[tool.poetry]\nextras = \"x\"\n[tool.poetry.dependencies]\nfoo = \"1\"\n",
			code: errs.ErrCodeInvalidManifest,
		},
		{
			name: "extras group not a list",
			text: "[tool.poetry.dependencies]\nfoo = \"1\"\n[tool.poetry.extras]\nall = \"foo\"\n",
			code: errs.ErrCodeInvalidManifest,
		},
		{
			name: "extras member not a string",
			text: "[tool.poetry.dependencies]\nfoo = \"1\"\n[tool.poetry.extras]\nall = [1, 2]\n",
			code: errs.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePyproject(tt.text)
			if err == nil {
				t.Fatal("ParsePyproject() should fail")
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("ParsePyproject() code = %v, want %v (%v)", errs.GetCode(err), tt.code, err)
			}
		})
	}
}
