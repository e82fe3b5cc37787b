package main

import "fmt"

func main() {
	fmt.Println(StatusOK.Uint16(), StatusCreated.Uint16(), StatusNotFound.Uint16())
	fmt.Println(StatusFromUint16(201), StatusFromUint16(500))
}
