// Command dayslot gives duplicate-date videos in a directory distinct
// S<year>E<mmdd> episode names.
package main

import "dayslot/cmd/dayslot/cmd"

func main() {
	cmd.Execute()
}
