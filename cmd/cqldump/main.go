// Command cqldump decodes one CQL cell for manual inspection, given its
// <type> descriptor and cell payload as hex strings. It performs no
// framing, connection, or query work; point it at bytes captured from a
// native-protocol dump.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/TvdW/cassandra-codec-go/cql"
)

func main() {
	typeHex := flag.String("type", "", "hex-encoded <type> TLV")
	cellHex := flag.String("cell", "", "hex-encoded [length][payload] cell")
	flag.Parse()

	if *typeHex == "" || *cellHex == "" {
		fmt.Fprintln(os.Stderr, "usage: cqldump -type <hex> -cell <hex>")
		os.Exit(2)
	}

	if err := run(*typeHex, *cellHex); err != nil {
		fmt.Fprintln(os.Stderr, "cqldump:", err)
		os.Exit(1)
	}
}

func run(typeHex, cellHex string) error {
	typeBytes, err := hex.DecodeString(typeHex)
	if err != nil {
		return fmt.Errorf("decoding -type: %w", err)
	}
	cellBytes, err := hex.DecodeString(cellHex)
	if err != nil {
		return fmt.Errorf("decoding -cell: %w", err)
	}

	typ, err := cql.ParseType(cql.NewReader(typeBytes))
	if err != nil {
		return fmt.Errorf("parsing type: %w", err)
	}

	warn := cql.WarnFunc(func(format string, args ...interface{}) {
		fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
	})

	v, err := cql.DecodeCell(cql.NewReader(cellBytes), typ, warn)
	if err != nil {
		return fmt.Errorf("decoding cell: %w", err)
	}

	printValue(typ, v)
	return nil
}

func printValue(typ *cql.TypeDescriptor, v cql.CellValue) {
	fmt.Printf("type: %s\n", typ.Tag)
	if v.IsNull() {
		fmt.Println("value: null")
		return
	}
	fmt.Printf("value: %s\n", formatValue(v))
}

func formatValue(v cql.CellValue) string {
	switch v.Kind {
	case cql.KindBool:
		return fmt.Sprintf("%v", v.Bool)
	case cql.KindI8:
		return fmt.Sprintf("%d", v.I8)
	case cql.KindI16:
		return fmt.Sprintf("%d", v.I16)
	case cql.KindI32:
		return fmt.Sprintf("%d", v.I32)
	case cql.KindI64:
		return fmt.Sprintf("%d", v.I64)
	case cql.KindF32:
		return fmt.Sprintf("%g", v.F32)
	case cql.KindF64:
		return fmt.Sprintf("%g", v.F64)
	case cql.KindBytes:
		return hex.EncodeToString(v.Bytes)
	case cql.KindText:
		return v.Text
	case cql.KindUUID:
		return v.UUID
	case cql.KindInet:
		return v.Inet
	case cql.KindDate:
		return v.Date
	case cql.KindTime:
		return v.Time
	case cql.KindDecimal:
		return v.Decimal
	case cql.KindVarInt:
		return v.VarInt
	case cql.KindList, cql.KindSet, cql.KindTuple:
		out := "["
		for i, item := range v.List {
			if i > 0 {
				out += ", "
			}
			out += formatValue(item)
		}
		return out + "]"
	case cql.KindMap:
		out := "{"
		for i, e := range v.Map {
			if i > 0 {
				out += ", "
			}
			out += formatValue(e.Key) + ": " + formatValue(e.Value)
		}
		return out + "}"
	case cql.KindUDT:
		out := "{"
		for i, p := range v.UDT {
			if i > 0 {
				out += ", "
			}
			out += p.Name + ": " + formatValue(p.Value)
		}
		return out + "}"
	default:
		return "null"
	}
}
