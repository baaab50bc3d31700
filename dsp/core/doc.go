// Package core holds small numeric helpers shared by the pipeline packages.
package core
