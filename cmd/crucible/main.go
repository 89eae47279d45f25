// Crucible finds the cheapest route for a crucible across a heat-loss map,
// where the crucible must travel in straight runs of bounded length.
//
// Usage:
//
//	# Solve the two classic profiles (runs 1..3 and 4..10) for a grid file
//	crucible solve input.txt
//
//	# Read the grid from stdin and solve one ad-hoc profile
//	cat input.txt | crucible solve --min-run 4 --max-run 10
//
//	# Solve every profile in a YAML file and print the paths
//	crucible solve input.txt --config profiles.yaml --path
//
//	# Print Prometheus metrics of the run after the results
//	crucible solve input.txt --metrics
//
//	# Show version information
//	crucible version
package main

func main() {
	Execute()
}
