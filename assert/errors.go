package assert

import (
	fmt2 "github.com/qjpcpu/linkedlist/fmt"
)

// ShouldBeTrue would panic if codition is false, msg is printed to stderr first
func ShouldBeTrue(condition bool, msg ...interface{}) {
	if !condition {
		printMsgArgs(msg...)
		panic("should be true")
	}
}

func printMsgArgs(args ...interface{}) {
	switch len(args) {
	case 0:
	case 1:
		fmt2.Eprint("%+v\n", args[0])
	default:
		fmt2.Eprint(args[0].(string), args[1:]...)
	}
}
