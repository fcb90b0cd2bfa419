package value_test

import (
	"fmt"

	"optlist-canon/value"
)

func Example() {
	fmt.Println(value.KindOf(value.String("name")))
	fmt.Println(value.KindOf(value.Number(42)))
	fmt.Println(value.KindOf(value.Sequence{value.Number(1)}))
	fmt.Println(value.KindOf(value.Mapping{}))
	fmt.Println(value.KindOf(value.Callable(func() value.Value { return value.None })))
	fmt.Println(value.KindOf(value.None))
	fmt.Println(value.KindOf(nil))
	fmt.Println(value.KindEnum(0))
	// Output:
	// KindString
	// KindNumber
	// KindSequence
	// KindMapping
	// KindCallable
	// KindAbsent
	// KindAbsent
	// KindEnum(0)
}

func ExampleKindEnum_IsStructured() {
	for k := value.KindEnum(1); int(k) < value.KindTotal; k++ {
		fmt.Println(k, k.IsScalar(), k.IsStructured())
	}
	// Output:
	// KindAbsent false false
	// KindString true false
	// KindNumber true false
	// KindSequence false true
	// KindMapping false true
	// KindCallable false true
}
