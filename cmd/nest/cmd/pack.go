package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arl/go-nest/buildctx"
	"github.com/arl/go-nest/config"
	"github.com/arl/go-nest/geom"
	"github.com/arl/go-nest/ingest"
	"github.com/arl/go-nest/nfp"
	"github.com/arl/go-nest/output"
	"github.com/arl/go-nest/pack"
)

var (
	cfgVal    string
	sheetsVal []string
	shapesVal string
)

// packCmd represents the pack command.
var packCmd = &cobra.Command{
	Use:   "pack OUTDIR",
	Short: "pack shapes onto sheets and write the result to OUTDIR",
	Long: `Pack the shapes in --shapes onto every sheet in --sheets, following
the settings in --config, and write one SVG per sheet into OUTDIR.`,
	Args: cobra.ExactArgs(1),
	RunE: runPack,
}

func init() {
	RootCmd.AddCommand(packCmd)

	packCmd.Flags().StringVar(&cfgVal, "config", "", "packing settings YAML (defaults used if empty)")
	packCmd.Flags().StringArrayVar(&sheetsVal, "sheets", nil, "sheet SVG documents (required)")
	packCmd.Flags().StringVar(&shapesVal, "shapes", "", "shapes SVG document (required)")
	packCmd.MarkFlagRequired("sheets")
	packCmd.MarkFlagRequired("shapes")
}

func runPack(cmd *cobra.Command, args []string) error {
	outDir := args[0]

	opts := config.NewOptions()
	if cfgVal != "" {
		loaded, err := config.Load(cfgVal)
		if err != nil {
			return fmt.Errorf("nest: loading config: %w", err)
		}
		opts = loaded
	}

	ctx := buildctx.New()
	ctx.StartTimer(buildctx.TimerTotal)
	defer ctx.StopTimer(buildctx.TimerTotal)

	shapesDoc, err := os.ReadFile(shapesVal)
	if err != nil {
		return fmt.Errorf("nest: reading shapes: %w", err)
	}

	ctx.StartTimer(buildctx.TimerIngest)
	parts, elems, err := ingest.ParseShapes(string(shapesDoc), opts.Tolerance, opts.Offset)
	ctx.StopTimer(buildctx.TimerIngest)
	if err != nil {
		return fmt.Errorf("nest: parsing shapes: %w", err)
	}

	partsByID := make(map[int]geom.PolygonWithHoles, len(parts))
	elemsByID := make(map[int]ingest.Element, len(parts))
	for i, p := range parts {
		partsByID[p.ID] = p
		elemsByID[p.ID] = elems[i]
	}

	nextID := 0
	for _, p := range parts {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}

	sheets := make([]*pack.Sheet, 0, len(sheetsVal))
	sheetRects := make([]geom.Rect, 0, len(sheetsVal))
	for _, path := range sheetsVal {
		doc, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("nest: reading sheet %s: %w", path, err)
		}
		ctx.StartTimer(buildctx.TimerIngest)
		rect, holes, next, err := ingest.ParseSheet(string(doc), opts.Tolerance, nextID)
		ctx.StopTimer(buildctx.TimerIngest)
		if err != nil {
			return fmt.Errorf("nest: parsing sheet %s: %w", path, err)
		}
		nextID = next
		sheets = append(sheets, pack.NewSheet(rect, holes))
		sheetRects = append(sheetRects, rect)
	}

	engine := nfp.NewEngine(opts.ResolveState())
	driver := pack.NewDriver(engine, opts.Rotations, opts.PartialSolution, ctx)

	result := driver.Pack(sheets, parts)
	if result.Status.Fatal() {
		return fmt.Errorf("nest: %w", result.Status)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("nest: creating output dir: %w", err)
	}

	placementsBySheet := make([][]pack.Placement, len(sheets))
	for _, pl := range result.Placements {
		placementsBySheet[pl.SheetIndex] = append(placementsBySheet[pl.SheetIndex], pl)
	}

	ctx.StartTimer(buildctx.TimerOutput)
	for i, rect := range sheetRects {
		f, err := os.Create(fmt.Sprintf("%s/sheet-%d.svg", outDir, i))
		if err != nil {
			return fmt.Errorf("nest: writing sheet %d: %w", i, err)
		}
		err = output.WriteSheet(f, output.Sheet{Rect: rect, Parts: partsByID, Elements: elemsByID}, placementsBySheet[i])
		f.Close()
		if err != nil {
			return fmt.Errorf("nest: rendering sheet %d: %w", i, err)
		}
	}
	ctx.StopTimer(buildctx.TimerOutput)

	fmt.Printf("placed %d/%d parts across %d sheets\n", len(result.Placements), len(parts), len(sheets))
	if len(result.FailedIDs) > 0 {
		fmt.Printf("failed to place %d parts: %v\n", len(result.FailedIDs), result.FailedIDs)
	}
	return nil
}
