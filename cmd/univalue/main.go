package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/reoring/univalue"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch sub := os.Args[1]; sub {
	case "fmt":
		fmtCmd(os.Args[2:])
	case "get":
		getCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "univalue CLI\n\nUsage:\n  univalue fmt [-indent N] [-yaml] [file]\n  univalue get -path /a/b/0 [-type int|int64|uint64|uint32|uint16|uint8|real|bool|string] [-yaml] [file]\n\nReads from stdin when no file is given.")
}

func fmtCmd(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	var indent int
	var fromYAML bool
	fs.IntVar(&indent, "indent", 0, "spaces per nesting level (0 = compact)")
	fs.BoolVar(&fromYAML, "yaml", false, "treat the input as YAML")
	_ = fs.Parse(args)

	v := load(fs.Arg(0), fromYAML)
	if _, err := v.WriteIndent(os.Stdout, indent); err != nil {
		fatalf("write: %v", err)
	}
	fmt.Println()
}

func getCmd(args []string) {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	var path, typ string
	var fromYAML bool
	fs.StringVar(&path, "path", "", "JSON pointer to the element (RFC 6901)")
	fs.StringVar(&typ, "type", "", "typed accessor to apply")
	fs.BoolVar(&fromYAML, "yaml", false, "treat the input as YAML")
	_ = fs.Parse(args)

	v := load(fs.Arg(0), fromYAML)
	elem, err := v.Extract(path)
	if err != nil {
		fatalf("%v", err)
	}

	switch typ {
	case "":
		fmt.Println(elem.String())
	case "int":
		print2(elem.GetInt())
	case "int64":
		print2(elem.GetInt64())
	case "uint64":
		print2(elem.GetUint64())
	case "uint32":
		print2(elem.GetUint32())
	case "uint16":
		print2(elem.GetUint16())
	case "uint8":
		print2(elem.GetUint8())
	case "real":
		print2(elem.GetFloat64())
	case "bool":
		print2(elem.GetBool())
	case "string":
		print2(elem.GetStr())
	default:
		fatalf("unknown -type %q", typ)
	}
}

func load(name string, fromYAML bool) *univalue.Value {
	var data []byte
	var err error
	if name == "" || name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		fatalf("read: %v", err)
	}

	var v *univalue.Value
	if fromYAML {
		v, err = univalue.FromYAML(data)
	} else {
		v, err = univalue.DecodeBytes(data)
	}
	if err != nil {
		fatalf("parse: %v", err)
	}
	return v
}

func print2[T any](v T, err error) {
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println(v)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "univalue: "+format+"\n", args...)
	os.Exit(1)
}
