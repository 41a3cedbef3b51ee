package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/berrythewa/clippaths/internal/types"
)

// noPaths is printed when the clipboard holds no file reference
const noPaths = "None"

func printResult(w io.Writer, res *types.PathResult, asJSON bool) error {
	if asJSON {
		if res.Paths == nil {
			withList := *res
			withList.Paths = []string{}
			res = &withList
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if !res.HasPaths() {
		_, err := fmt.Fprintln(w, noPaths)
		return err
	}
	for _, p := range res.Paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}
