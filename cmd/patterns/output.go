package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-leo/design-pattern-demo/internal/config"
	jsoniter "github.com/json-iterator/go"
)

type strategyResult struct {
	Strategy string   `json:"strategy"`
	Input    []string `json:"input"`
	Output   []string `json:"output"`
}

type creatorResult struct {
	Creator string `json:"creator"`
	Result  string `json:"result"`
}

type facadeResult struct {
	Result string `json:"result"`
}

// render writes v as JSON, or text as-is, depending on the configured output.
func (a *app) render(w io.Writer, text string, v any) error {
	if a.cfg.Output == config.OutputJSON {
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(text, "\n"))
	return err
}
