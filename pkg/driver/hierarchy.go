package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"minijava/typechecker-go/pkg/types"
)

// hierarchyFile mirrors the YAML layout of a hierarchy document.
type hierarchyFile struct {
	Classes []classDecl `yaml:"classes"`
}

type classDecl struct {
	Name        string       `yaml:"name"`
	Extends     []string     `yaml:"extends"`
	Constructor []string     `yaml:"constructor"`
	Methods     []methodDecl `yaml:"methods"`
}

type methodDecl struct {
	Name    string   `yaml:"name"`
	Params  []string `yaml:"params"`
	Returns string   `yaml:"returns"`
}

// ValidationError aggregates hierarchy validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "hierarchy: invalid declaration"
	}
	var b strings.Builder
	b.WriteString("hierarchy validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadHierarchy parses a hierarchy document from disk, returning a
// validated, linked registry.
func LoadHierarchy(path string) (*Registry, error) {
	if path == "" {
		return nil, fmt.Errorf("hierarchy: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("hierarchy: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("hierarchy: open %s: %w", absPath, err)
	}
	defer file.Close()
	return ParseHierarchy(file)
}

// ParseHierarchy decodes a hierarchy document and links it into a
// registry. Supertype, parameter, and return-type names may reference
// any declaration in the document regardless of order: every class is
// registered first, then signatures are linked in a second pass.
func ParseHierarchy(r io.Reader) (*Registry, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw hierarchyFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Issues: []string{"document is empty"}}
		}
		return nil, fmt.Errorf("hierarchy: parse: %w", err)
	}
	if len(raw.Classes) == 0 {
		return nil, &ValidationError{Issues: []string{"document declares no classes"}}
	}

	registry := &Registry{byName: builtins()}
	var errs ValidationError

	// Pass 1: register every declared name so pass 2 can link forward
	// and mutual references, supertypes included.
	declared := make([]*types.ClassOrInterface, 0, len(raw.Classes))
	for _, decl := range raw.Classes {
		if decl.Name == "" {
			errs.Issues = append(errs.Issues, "classes must not use empty names")
			declared = append(declared, nil)
			continue
		}
		if _, exists := registry.byName[decl.Name]; exists {
			errs.Issues = append(errs.Issues, fmt.Sprintf("type %q declared more than once", decl.Name))
			declared = append(declared, nil)
			continue
		}
		class := types.NewClassOrInterface(decl.Name, nil, nil, nil)
		registry.byName[decl.Name] = class
		declared = append(declared, class)
	}

	// Pass 2: link supertypes and signatures against the full name
	// table. Any registered name is a valid parameter or return type,
	// primitives included. Mutually extending declarations produce a
	// supertype cycle, which the subtype engine tolerates.
	for i, decl := range raw.Classes {
		class := declared[i]
		if class == nil {
			continue
		}
		supertypes, issues := resolveSupertypes(registry, decl)
		errs.Issues = append(errs.Issues, issues...)
		class.SetSupertypes(supertypes)

		ctorParams, issues := resolveTypeList(registry, decl.Constructor,
			fmt.Sprintf("%s.constructor", decl.Name))
		errs.Issues = append(errs.Issues, issues...)
		class.SetConstructor(types.NewConstructor(ctorParams...))

		for _, m := range decl.Methods {
			if m.Name == "" {
				errs.Issues = append(errs.Issues, fmt.Sprintf("%s declares a method without a name", decl.Name))
				continue
			}
			params, issues := resolveTypeList(registry, m.Params,
				fmt.Sprintf("%s.%s params", decl.Name, m.Name))
			errs.Issues = append(errs.Issues, issues...)
			returns, issue := resolveReturn(registry, m.Returns, decl.Name, m.Name)
			if issue != "" {
				errs.Issues = append(errs.Issues, issue)
			}
			class.DefineMethod(types.NewMethod(m.Name, params, returns))
		}
	}

	if len(errs.Issues) > 0 {
		return nil, &errs
	}
	return registry, nil
}

// resolveSupertypes links a declaration's extends list. An empty list
// means the implicit root, Object.
func resolveSupertypes(registry *Registry, decl classDecl) ([]types.Type, []string) {
	if len(decl.Extends) == 0 {
		return []types.Type{types.Object}, nil
	}
	var issues []string
	supertypes := make([]types.Type, 0, len(decl.Extends))
	for _, name := range decl.Extends {
		super, ok := registry.byName[name]
		if !ok {
			issues = append(issues, fmt.Sprintf("%s extends unknown type %q", decl.Name, name))
			continue
		}
		if _, ok := super.(*types.ClassOrInterface); !ok {
			issues = append(issues, fmt.Sprintf("%s extends %q, which is not a class or interface", decl.Name, name))
			continue
		}
		supertypes = append(supertypes, super)
	}
	return supertypes, issues
}

func resolveTypeList(registry *Registry, names []string, context string) ([]types.Type, []string) {
	var issues []string
	resolved := make([]types.Type, 0, len(names))
	for _, name := range names {
		t, ok := registry.byName[name]
		if !ok {
			issues = append(issues, fmt.Sprintf("%s references unknown type %q", context, name))
			continue
		}
		resolved = append(resolved, t)
	}
	return resolved, issues
}

// resolveReturn maps an empty returns entry to void.
func resolveReturn(registry *Registry, name, className, methodName string) (types.Type, string) {
	if name == "" {
		return types.Void, ""
	}
	t, ok := registry.byName[name]
	if !ok {
		return types.Void, fmt.Sprintf("%s.%s returns unknown type %q", className, methodName, name)
	}
	return t, ""
}
