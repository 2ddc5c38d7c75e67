////////////////////////////////////////////////////////////////////////////////
// Parimutuel prediction contract for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

// main is left empty on purpose; the contract surface is the set of
// exported wasm functions in exports.go.
func main() {

}
