package labeltpl_test

import (
	"bytes"
	"fmt"

	"github.com/lvillar/paleolabel/labeltpl"
)

func ExampleRender() {
	template := `{
		"title": "Morrison Formation drawer",
		"layout": "avery5163",
		"labels": [
			{"fields": [
				{"name": "Genus", "value": "Allosaurus"},
				{"name": "Species", "value": "fragilis"},
				{"name": "Locality", "value": "Cleveland-Lloyd Quarry"},
				{"name": "Formation", "value": "Morrison"}
			]},
			{"text": "FRAGILE - DO NOT STACK"}
		]
	}`

	var buf bytes.Buffer
	if err := labeltpl.Render(&buf, []byte(template)); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("PDF generated successfully")
	// Output: PDF generated successfully
}
