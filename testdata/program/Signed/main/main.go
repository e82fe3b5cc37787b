package main

import "fmt"

func main() {
	fmt.Println(Minus.Int8(), Zero.Int8(), Plus.Int8())
	fmt.Println(SignFromInt8(0), Sign(5))

	defer func() { fmt.Println(recover()) }()
	SignFromInt8(5)
}
