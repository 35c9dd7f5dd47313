package system

import (
	"encoding/json"
	"fmt"
	"os"

	"daydesk/internal/cli"
	"daydesk/internal/constants"
)

type ExportCmd struct {
	Output string `help:"Output file. Defaults to stdout." short:"o"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	bundle, err := ctx.Store.Export()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return err
	}

	if c.Output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("✓ Exported to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Bundle file produced by export."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read bundle: %w", err)
	}

	var bundle map[string]json.RawMessage
	if err := json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("bundle is not valid JSON: %w", err)
	}

	typed := make(map[constants.DocName]json.RawMessage, len(bundle))
	for k, v := range bundle {
		typed[constants.DocName(k)] = v
	}
	if err := ctx.Store.Import(typed); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	ctx.Scheduler.Reconcile()
	fmt.Printf("✓ Imported %d documents from %s\n", len(bundle), c.File)
	return nil
}
