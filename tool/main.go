package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"strings"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type Decls struct {
	Imports []string       `( "import" @String )*`
	Sums    []*Declaration `@@*`
}

type Field struct {
	Name  string `@Ident`
	Slice bool   `@( "[" "]" )?`
	Kind  string `@Ident ( @"." @Ident )?`
}

type TCase struct {
	Name   string   `@Ident`
	Fields []*Field `"{" ( @@ ( "," @@ )* )? "}"`
}

type Declaration struct {
	Name  string   `"type" @Ident "="`
	Cases []*TCase `( "|" @@ )+`
	I     struct{} `";"`
}

func (d *Decls) importPath(pkg string) string {
	for _, imp := range d.Imports {
		if path.Base(imp) == pkg {
			return imp
		}
	}
	return ""
}

func (d *Decls) fieldType(f *Field) *Statement {
	s := Null()
	if f.Slice {
		s = Index()
	}
	if idx := strings.Index(f.Kind, "."); idx >= 0 {
		pkg, name := f.Kind[:idx], f.Kind[idx+1:]
		return s.Qual(d.importPath(pkg), name)
	}
	return s.Id(f.Kind)
}

func GenerateDecls(pkgname string, d *Decls) string {
	f := NewFile(pkgname)
	f.HeaderComment("Code generated by astgen. DO NOT EDIT.")

	for _, decl := range d.Sums {
		marker := "is_" + decl.Name
		f.Type().Id(decl.Name).Interface(
			Id(marker).Params(),
		)

		for _, it := range decl.Cases {
			var fields []Code
			for _, field := range it.Fields {
				fields = append(fields, Id(field.Name).Add(d.fieldType(field)))
			}
			f.Type().Id(it.Name).Struct(fields...)
			f.Func().Params(Id("v").Id(it.Name)).Id(marker).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: astgen <decls> <out.go> <package>")
		os.Exit(2)
	}

	parser := participle.MustBuild(&Decls{}, participle.Unquote("String"))

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	decls := Decls{}
	err = parser.ParseBytes(inData, &decls)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateDecls(pkgname, &decls)), 0644)
	if err != nil {
		panic(err)
	}
}
