package timestamp_test

import (
	"fmt"

	"github.com/walteh/exifchdate/pkg/timestamp"
)

func ExampleTransform() {
	edit, _ := timestamp.NewDateEdit(25, 12, "1999")

	updated, err := timestamp.Transform("2021:05:17 14:03:22+02:00", edit)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(updated)
	// Output: 1999:12:25 14:03:22+02:00
}

func ExampleTransform_keepYear() {
	edit, _ := timestamp.NewDateEdit(25, 12, "")

	updated, _ := timestamp.Transform("2021:05:17 14:03:22", edit)
	fmt.Println(updated)
	// Output: 2021:12:25 14:03:22
}
