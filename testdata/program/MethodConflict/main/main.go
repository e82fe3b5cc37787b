package main

func (n Number) String() string { return "number" }

func main() {}
