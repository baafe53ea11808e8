package parser_test

import (
	"fmt"
	"log"

	"github.com/DeepakRathod14/java-custom-automation/parser"
)

func ExampleParseWithOptions() {
	result, err := parser.ParseWithOptions(
		parser.WithBytes([]byte(`{"orders": [{"id": 1}, {"id": 2}]}`)),
		parser.WithSourceName("orders.json"),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result.SourcePath, result.SourceFormat)
	fmt.Println(result.Document)
	// Output:
	// orders.json json
	// map[orders:[map[id:1] map[id:2]]]
}

func ExampleFormatBytes() {
	fmt.Println(parser.FormatBytes(parser.DefaultMaxFileSize))
	// Output:
	// 10.0 MiB
}
