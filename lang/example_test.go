package lang_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ardnew/corefmt/lang"
)

func ExampleFormat() {
	src := strings.NewReader(`program int n; begin input n;
	while 0<n begin output n; n=n-1; endwhile end`)

	err := lang.Format(context.Background(), src, os.Stdout, lang.WithIndentWidth(2))
	if err != nil {
		fmt.Println(err)
	}

	// Output:
	// program
	//   int n;
	// begin
	//   input n;
	//   while 0<n begin
	//     output n;
	//     n=n-1;
	//   endwhile
	// end
}

func ExampleCheck() {
	src := strings.NewReader("program int total; begin totl=1; end")

	err := lang.Check(context.Background(), src)
	fmt.Println(errors.Is(err, lang.ErrUndeclared))
	fmt.Println(err)

	// Output:
	// true
	// undeclared identifier: variable totl not declared in scope (did you mean total?)
}
