package tinyre_test

import (
	"errors"
	"fmt"

	"github.com/coregx/tinyre"
	"github.com/coregx/tinyre/syntax"
)

func ExampleRegex_Search() {
	re := tinyre.MustCompile("(Hello), (World!)")
	m := re.Search("Hello, World!")
	fmt.Println(m.Text())
	fmt.Println(m.Captures())
	// Output:
	// Hello, World!
	// [Hello World!]
}

func ExampleRegex_Search_backtracking() {
	re := tinyre.MustCompile("(a*)(aaa)")
	fmt.Printf("%q\n", re.Search("aaaaaaa").Captures())
	// Output:
	// ["aaaa" "aaa"]
}

func ExampleRegex_Search_anchoredAtStart() {
	re := tinyre.MustCompile("World")
	fmt.Println(re.Search("Hello, World") == nil)
	fmt.Println(re.FindString("Hello, World"))
	// Output:
	// true
	// World
}

func ExampleRegex_FindAllString() {
	re := tinyre.MustCompile("[0-9][0-9]*")
	fmt.Println(re.FindAllString("age 42, height 180", -1))
	fmt.Println(re.Prefilter())
	// Output:
	// [42 180]
	// table
}

func ExampleCompile_error() {
	_, err := tinyre.Compile("?abc")
	fmt.Println(err)
	fmt.Println(errors.Is(err, syntax.ErrMissingRepeatArgument))
	// Output:
	// error parsing regexp: missing argument to repetition operator: `?`
	// true
}

func ExampleCompileWithConfig() {
	config := tinyre.DefaultConfig()
	config.Backend = tinyre.BackendRE2
	re, err := tinyre.CompileWithConfig("(a*)*b", config)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(re.Backend(), re.MatchString("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaac"))
	// Output:
	// re2 false
}
