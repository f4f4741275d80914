package main

import (
	"fmt"
	"log"

	"github.com/l-donovan/parsnip/common"
	"github.com/l-donovan/parsnip/internal/demo"
	"github.com/l-donovan/parsnip/jsonish"
	"github.com/l-donovan/parsnip/jsonish/document"
)

func main() {
	tree, err := jsonish.Parse(demo.Document)

	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("Output: %s\n", tree)

	doc, err := document.Convert(tree)

	if err != nil {
		log.Fatalln(err)
	}

	out, err := common.Serialize(doc, false, 2)

	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("Converted: %s\n", out)
}
