package fix_test

import (
	"fmt"
	"time"

	"github.com/ssargent/fixhub/pkg/dictionary"
	"github.com/ssargent/fixhub/pkg/fix"
)

func Example() {
	// A human-readable transcript using pipe delimiters.
	raw := "8=FIX.4.2|9=123|35=D|49=MYFIRM|56=FIXHUB|34=1|52=20230101-00:00:00.000|" +
		"11=ORD12345|21=1|55=AAPL|54=1|60=20230101-00:00:00.000|40=2|"

	normalized, err := fix.Normalize(raw, 0) // detect the delimiter
	if err != nil {
		fmt.Println("normalize:", err)
		return
	}

	parser := fix.NewParser()
	fields := parser.Parse(normalized)

	validator := fix.NewValidator(dictionary.Default())
	result := validator.Validate(fields)

	name, _ := validator.TypeName(fields[fix.TagMsgType])
	fmt.Println("type:", name)
	fmt.Println("valid:", result.Valid)
	// Output:
	// type: New Order - Single
	// valid: true
}

func ExampleBuilder_Build() {
	clock := func() time.Time {
		return time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	builder, err := fix.NewBuilder("FIX.4.2", fix.WithClock(clock))
	if err != nil {
		fmt.Println("builder:", err)
		return
	}

	msg := builder.Build("0", nil)
	fmt.Println(fix.Display(msg, '|'))
	// Output:
	// 8=FIX.4.2|9=30|35=0|52=20230101-00:00:00.000|10=124
}
