package shell

import "io"

const helpText = `ocho puzzle shell

  new [size]        start a fresh solved board (size 2 or 3, default 3)
  show              print the current board
  shuffle [steps]   scramble with a random walk of legal moves (default 40)
  move u|d|l|r      slide the blank by hand
  check             run the parity-based solvability test
  solve [algorithm] search for a solution: bfs, dfs, or astar (default astar)
  path              step through the last solution one board at a time
  bench <n> [alg]   solve n fresh scrambles and plot nodes expanded
  set <param> <n>   adjust depth-limit or max-nodes
  help              this message
  exit              leave the shell
`

func usage(w io.Writer) {
	io.WriteString(w, helpText)
}
