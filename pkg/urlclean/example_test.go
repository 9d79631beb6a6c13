package urlclean_test

import (
	"fmt"

	"github.com/ajtatum/BabouExtensions/pkg/urlclean"
)

func ExampleClean() {
	cleaned, err := urlclean.Clean("https://example.com/page?utm_source=news&id=5&fbclid=abc")
	if err != nil {
		panic(err)
	}
	fmt.Println(cleaned)
	// Output: https://example.com/page?id=5
}
