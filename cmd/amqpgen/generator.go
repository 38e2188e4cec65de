package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
)

type packageInfo struct {
	Dir     string
	Package string
	Structs []structInfo
}

type structInfo struct {
	Name   string
	Fields []fieldInfo
}

type fieldInfo struct {
	Name   string
	Method string
}

//go:embed templates/amqp_gen.gotemplate
var amqpGenTemplate string

// scalarMethods maps supported Go field types to the Encoder/Decoder method
// suffix (WriteX / ReadX).
var scalarMethods = map[string]string{
	"bool":    "Bool",
	"uint8":   "Uint8",
	"int8":    "Int8",
	"uint16":  "Uint16",
	"int16":   "Int16",
	"uint32":  "Uint32",
	"int32":   "Int32",
	"uint64":  "Uint64",
	"int64":   "Int64",
	"float32": "Float32",
	"float64": "Float64",
}

func collectPackageInfos(root string) ([]*packageInfo, error) {
	dirs := make(map[string]struct{})
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if shouldSkipDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") {
			return nil
		}
		if strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		dirs[filepath.Dir(path)] = struct{}{}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	var infos []*packageInfo
	for dir := range dirs {
		info, err := parsePackageDir(dir)
		if err != nil {
			return nil, err
		}
		if info != nil {
			infos = append(infos, info)
		}
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Dir < infos[j].Dir
	})
	return infos, nil
}

func shouldSkipDir(name string) bool {
	if name == "testdata" || name == "vendor" {
		return true
	}
	if strings.HasPrefix(name, ".") && name != "." {
		return true
	}
	return strings.HasPrefix(name, "_")
}

func parsePackageDir(dir string) (*packageInfo, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedSyntax | packages.NeedFiles,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}

	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			log.Printf("amqpgen: skipping %s (%v)", dir, pkg.Errors[0])
			continue
		}
		if pkg.Name == "" || pkg.Name == "main" || strings.HasSuffix(pkg.Name, "_test") {
			continue
		}
		info := &packageInfo{Dir: dir, Package: pkg.Name}
		for _, file := range pkg.Syntax {
			if pkg.Fset != nil {
				filename := pkg.Fset.Position(file.Pos()).Filename
				base := filepath.Base(filename)
				if base == "amqp_gen.go" || strings.HasSuffix(base, "_test.go") {
					continue
				}
			}
			ast.Inspect(file, func(n ast.Node) bool {
				ts, ok := n.(*ast.TypeSpec)
				if !ok {
					return true
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					return false
				}
				if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
					return false
				}
				fields, ok := collectScalarFields(st)
				if !ok || len(fields) == 0 {
					return false
				}
				info.Structs = append(info.Structs, structInfo{Name: ts.Name.Name, Fields: fields})
				return false
			})
		}
		sort.Slice(info.Structs, func(i, j int) bool {
			return info.Structs[i].Name < info.Structs[j].Name
		})
		return info, nil
	}
	return nil, nil
}

// collectScalarFields returns the amqp-tagged fields of st in declaration
// order. A struct qualifies only when every tagged field is a supported
// scalar; a struct with no amqp tags is skipped silently.
func collectScalarFields(st *ast.StructType) ([]fieldInfo, bool) {
	var fields []fieldInfo
	for _, field := range st.Fields.List {
		if field.Tag == nil || len(field.Names) == 0 {
			continue
		}
		tagLit := strings.Trim(field.Tag.Value, "`")
		wire, ok := reflect.StructTag(tagLit).Lookup("amqp")
		if !ok {
			continue
		}
		if wire == "-" {
			continue
		}
		ident, ok := field.Type.(*ast.Ident)
		if !ok {
			return nil, false
		}
		method, ok := scalarMethods[ident.Name]
		if !ok {
			return nil, false
		}
		for _, name := range field.Names {
			if !name.IsExported() {
				return nil, false
			}
			fields = append(fields, fieldInfo{
				Name:   name.Name,
				Method: method,
			})
		}
	}
	return fields, true
}

func generatePackage(info *packageInfo) ([]byte, error) {
	tmpl, err := template.New("amqp_gen").Parse(amqpGenTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, info); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source for %s: %w", info.Dir, err)
	}
	return src, nil
}

func removeGeneratedFile(dir string) (bool, error) {
	path := filepath.Join(dir, "amqp_gen.go")
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func writeFileIfChanged(path string, src []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, src) {
		return false, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
