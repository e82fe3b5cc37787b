package main

import "fmt"

func main() {
	fmt.Println(NumberTen.Uint8(), NumberEleven.Uint8())
	fmt.Println(NumberFromUint8(11))
	fmt.Println(NumberFromUint8(7), NumberFromUint8(7).IsOther(), NumberFromUint8(7).Uint8())
	fmt.Println(NumberOther(1) == NumberOne, NumberOne.IsOther())

	n, err := NumberTryFromUint8(200)
	fmt.Println(n, err)
}
