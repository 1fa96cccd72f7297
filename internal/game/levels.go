package game

import (
	"fmt"
	"strings"
)

// LevelDef is a level's static definition: a fixed 2D grid of brick-type
// tags plus the ordered list of icons distributed across the level's
// breakable bricks at construction time.
type LevelDef struct {
	Number int
	Grid   []string
	Icons  []IconKind
}

// Grid rows are space-separated 4-character tags, "----" for an empty
// cell, 14 tags per row.
var brickTags = map[string]BrickKind{
	"----": BrickNone,
	"RED_": BrickRed,
	"BLUE": BrickBlue,
	"GRN_": BrickGreen,
	"AQUA": BrickAqua,
	"GREY": BrickGrey,
	"REDL": BrickRedLine,
	"BLUL": BrickBlueLine,
	"GRNL": BrickGreenLine,
	"AQUL": BrickAquaLine,
	"GRYL": BrickGreyLine,
	"PINK": BrickPink2,
	"PNK1": BrickPink1,
	"REDB": BrickRedBlue2,
	"RDB1": BrickRedBlue1,
	"MUL4": BrickMulti4,
	"MUL3": BrickMulti3,
	"MUL2": BrickMulti2,
	"MUL1": BrickMulti1,
	"UK__": BrickUKFlag,
	"KNYA": BrickKenyaFlag,
	"CUP_": BrickCup,
	"BBB_": BrickBBB,
	"FNM_": BrickFNM,
	"HAPY": BrickSmiling,
	"SAD_": BrickFrowning,
	"LGRY": BrickGreyLeft,
	"RGRY": BrickGreyRight,
	"NWAL": BrickWall,
	"RWAL": BrickWallRight,
	"BLOK": BrickSolid,
	"BONB": BrickBonusB,
	"BONO": BrickBonusO,
	"BONN": BrickBonusN,
	"BONU": BrickBonusU,
	"BONS": BrickBonusS,
}

// ParseGrid converts tag rows into brick kinds. Rows must carry exactly
// GridColumns tags and every tag must be known.
func ParseGrid(rows []string) ([][]BrickKind, error) {
	grid := make([][]BrickKind, 0, len(rows))
	for i, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != GridColumns {
			return nil, fmt.Errorf("grid row %d: got %d columns, want %d", i, len(fields), GridColumns)
		}
		kinds := make([]BrickKind, GridColumns)
		for j, tag := range fields {
			kind, ok := brickTags[tag]
			if !ok {
				return nil, fmt.Errorf("grid row %d: unknown brick tag %q", i, tag)
			}
			kinds[j] = kind
		}
		grid = append(grid, kinds)
	}
	return grid, nil
}

// LevelCount returns the number of defined levels.
func LevelCount() int {
	return len(levelDefs)
}

// GetLevel returns the definition for a 1-based level number. The bool is
// false past the last level, which is a normal "campaign complete"
// outcome, not an error.
func GetLevel(number int) (LevelDef, bool) {
	if number < 1 || number > len(levelDefs) {
		return LevelDef{}, false
	}
	return levelDefs[number-1], true
}

// levelDefs is the ordered campaign. Each grid is hand-laid; keeping them
// as literal rows makes the level shapes readable in the source.
var levelDefs = []LevelDef{
	{
		Number: 1,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- KNYA UK__ ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- UK__ KNYA ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_",
			"BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE",
			"GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_",
			"AQUA AQUA AQUA AQUA AQUA AQUA PINK PINK AQUA AQUA AQUA AQUA AQUA AQUA",
		},
		Icons: []IconKind{IconMagnet, IconShorten, IconBarrier, IconLengthen, IconSpeedUp},
	},
	{
		Number: 2,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE ----",
			"---- RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ ----",
			"---- GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ GRN_ ----",
			"---- AQUA AQUA AQUA AQUA AQUA AQUA AQUA AQUA AQUA AQUA AQUA AQUA ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- AQUL AQUL AQUL AQUL AQUL AQUL AQUL AQUL AQUL AQUL AQUL AQUL ----",
			"---- GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL ----",
			"---- REDL REDL REDL REDL REDL REDL REDL REDL REDL REDL REDL REDL ----",
			"---- BLUL BLUL BLUL BLUL BLUL BLUL BLUL BLUL BLUL BLUL BLUL BLUL ----",
		},
		Icons: []IconKind{IconSpeedUp, IconSplit, IconSplit, IconShoot, IconSlowDown, IconScore, IconLife},
	},
	{
		Number: 3,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"REDL REDL REDL REDL REDL REDL REDL REDL REDL REDL REDL REDL REDL REDL",
			"---- HAPY ---- HAPY ---- HAPY ---- HAPY ---- HAPY ---- HAPY ---- HAPY",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"BLUL BLUL BLUL BLUL BLUL BLUL BLUL BLUL BLUL BLUL BLUL BLUL BLUL BLUL",
			"SAD_ ---- SAD_ ---- SAD_ ---- SAD_ ---- SAD_ ---- SAD_ ---- SAD_ ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL",
			"---- HAPY ---- HAPY ---- HAPY ---- HAPY ---- HAPY ---- HAPY ---- HAPY",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- PINK PINK ---- ---- ---- ---- ---- ----",
		},
		Icons: []IconKind{IconShoot, IconLife, IconInvincible, IconScore, IconLengthen},
	},
	{
		Number: 4,
		Grid: []string{
			"---- BLUL REDL ---- ---- ---- GRNL AQUL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- AQUL GRNL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- GRNL AQUL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- AQUL GRNL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- GRNL AQUL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- AQUL GRNL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- GRNL AQUL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- AQUL GRNL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- GRNL AQUL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- AQUL GRNL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- GRNL AQUL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- AQUL GRNL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- GRNL AQUL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- AQUL GRNL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- GRNL AQUL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- AQUL GRNL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- GRNL AQUL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- AQUL GRNL ---- ---- ---- REDL BLUL ----",
			"---- BLUL REDL ---- ---- ---- GRNL AQUL ---- ---- ---- REDL BLUL ----",
		},
		Icons: []IconKind{IconBarrier, IconShorten, IconMagnet, IconSplit, IconLengthen, IconShoot, IconScore},
	},
	{
		Number: 5,
		Grid: []string{
			"BLUE BLUE BLUE BLUE BLUE ---- ---- ---- ---- BLUE BLUE BLUE BLUE BLUE",
			"BLUE RED_ RED_ RED_ ---- ---- ---- ---- ---- ---- RED_ RED_ RED_ BLUE",
			"BLUE GRN_ GRN_ ---- ---- ---- ---- ---- ---- ---- ---- GRN_ GRN_ BLUE",
			"BLUE RED_ ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- RED_ BLUE",
			"BLUE ---- ---- ---- ---- ---- MUL4 ---- ---- ---- ---- ---- ---- BLUE",
			"---- ---- ---- ---- ---- ---- ---- MUL4 ---- ---- ---- ---- ---- ----",
			"BLUE ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- BLUE",
			"BLUE RED_ ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- RED_ BLUE",
			"BLUE GRN_ GRN_ ---- ---- ---- ---- ---- ---- ---- ---- GRN_ GRN_ BLUE",
			"BLUE RED_ RED_ RED_ ---- ---- ---- ---- ---- ---- RED_ RED_ RED_ BLUE",
			"BLUE BLUE BLUE BLUE BLUE ---- ---- ---- ---- BLUE BLUE BLUE BLUE BLUE",
		},
		Icons: []IconKind{IconMagnet, IconScore, IconMagnet, IconScore, IconShoot, IconLife},
	},
	{
		Number: 6,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- REDL ---- ---- ---- ---- ---- ---- BLUL ---- ---- ----",
			"---- ---- REDL RGRY REDL ---- ---- ---- ---- BLUL LGRY BLUL ---- ----",
			"---- REDL ---- MUL4 ---- REDL ---- ---- BLUL ---- MUL4 ---- BLUL ----",
			"---- ---- REDL ---- REDL ---- ---- ---- ---- BLUL ---- BLUL ---- ----",
			"---- ---- ---- REDL ---- ---- BLUL REDL ---- ---- BLUL ---- ---- ----",
			"---- ---- ---- ---- ---- BLUL BBB_ CUP_ REDL ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- REDL CUP_ FNM_ BLUL ---- ---- ---- ---- ----",
			"---- ---- ---- BLUL ---- ---- REDL BLUL ---- ---- REDL ---- ---- ----",
			"---- ---- BLUL ---- BLUL ---- ---- ---- ---- REDL ---- REDL ---- ----",
			"---- BLUL ---- MUL4 ---- BLUL ---- ---- REDL ---- MUL4 ---- REDL ----",
			"---- ---- BLUL RGRY BLUL ---- ---- ---- ---- REDL LGRY REDL ---- ----",
			"---- ---- ---- BLUL ---- ---- ---- ---- ---- ---- REDL ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- HAPY HAPY ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- HAPY ---- ---- HAPY ---- ---- ---- ---- ----",
			"---- ---- ---- ---- HAPY ---- PINK PINK ---- HAPY ---- ---- ---- ----",
			"---- ---- ---- ---- ---- HAPY ---- ---- HAPY ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- HAPY HAPY ---- ---- ---- ---- ---- ----",
		},
		Icons: []IconKind{IconScore, IconLife, IconBarrier, IconScore, IconLengthen},
	},
	{
		Number: 7,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- GREY GREY GREY GREY GREY GREY GREY GREY ---- ---- ----",
			"---- ---- ---- GREY BLUL BLUL BLUL GRNL GRNL GRNL GREY ---- ---- ----",
			"---- ---- ---- GREY BLUL GREY GREY GREY GREY GRNL GREY ---- ---- ----",
			"---- ---- ---- GREY BLUL GREY ---- ---- GREY GRNL GREY ---- ---- ----",
			"---- ---- ---- GREY GRNL GREY ---- ---- GREY BLUL GREY ---- ---- ----",
			"---- ---- ---- GREY GRNL GREY GREY GREY GREY BLUL GREY ---- ---- ----",
			"---- ---- ---- GREY GRNL GRNL GRNL BLUL BLUL BLUL GREY ---- ---- ----",
			"---- ---- ---- GREY GREY GREY GREY GREY GREY GREY GREY ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- GREY GREY GREY GREY GREY GREY GREY GREY GREY GREY GREY GREY ----",
			"---- GREY GRNL GRNL GRNL GRNL GRNL BLUL BLUL BLUL BLUL BLUL GREY ----",
			"---- GREY GRNL GREY GREY GREY GREY GREY GREY GREY GREY BLUL GREY ----",
			"---- GREY GRNL GREY ---- ---- ---- ---- ---- ---- GREY BLUL GREY ----",
			"---- GREY BLUL GREY ---- ---- ---- ---- ---- ---- GREY GRNL GREY ----",
			"---- GREY BLUL GREY GREY GREY GREY GREY GREY GREY GREY GRNL GREY ----",
			"---- GREY BLUL BLUL BLUL BLUL BLUL GRNL GRNL GRNL GRNL GRNL GREY ----",
			"---- GREY GREY GREY GREY GREY GREY GREY GREY GREY GREY GREY GREY ----",
		},
		Icons: []IconKind{IconSpeedUp, IconMagnet, IconAdvance, IconSlowDown, IconInvincible, IconSplit},
	},
	{
		Number: 8,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- MUL2 MUL2 ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- REDB REDB ---- ---- ---- ---- ---- ----",
			"RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"GREY GRN_ GREY GRN_ GREY GRN_ GREY GREY GRN_ GREY GRN_ GREY GRN_ GREY",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- RGRY RGRY ---- ---- ---- ---- ---- ---- LGRY LGRY ---- ----",
			"---- ---- RGRY RGRY ---- ---- ---- ---- ---- ---- LGRY LGRY ---- ----",
		},
		Icons: []IconKind{IconBarrier, IconShorten, IconSplit, IconLengthen, IconLife, IconSpeedUp, IconSplit, IconShorten, IconScore},
	},
	{
		Number: 9,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- AQUA AQUA ---- ---- ---- ---- ---- ---- AQUA AQUA ---- ----",
			"---- GREY RED_ RED_ AQUA ---- ---- ---- ---- AQUA RED_ RED_ GREY ----",
			"---- GREY RED_ RED_ AQUA ---- ---- ---- ---- AQUA RED_ RED_ GREY ----",
			"---- ---- GREY RED_ RED_ AQUA ---- ---- AQUA RED_ RED_ GREY ---- ----",
			"---- ---- ---- GREY RED_ RED_ AQUA AQUA RED_ RED_ GREY ---- ---- ----",
			"---- ---- ---- ---- GREY RED_ RED_ RED_ RED_ GREY ---- ---- ---- ----",
			"---- ---- ---- ---- ---- GREY RED_ RED_ GREY ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- REDB REDB ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- REDB REDB ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- REDB REDB ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- GREY RED_ RED_ GREY ---- ---- ---- ---- ----",
			"---- ---- ---- ---- GREY RED_ RED_ RED_ RED_ GREY ---- ---- ---- ----",
			"---- ---- ---- GREY RED_ RED_ AQUA AQUA RED_ RED_ GREY ---- ---- ----",
			"---- ---- GREY RED_ RED_ AQUA ---- ---- AQUA RED_ RED_ GREY ---- ----",
			"---- GREY RED_ RED_ AQUA ---- ---- ---- ---- AQUA RED_ RED_ GREY ----",
			"---- GREY RED_ RED_ AQUA ---- ---- ---- ---- AQUA RED_ RED_ GREY ----",
			"---- ---- AQUA AQUA ---- ---- ---- ---- ---- ---- AQUA AQUA ---- ----",
		},
		Icons: []IconKind{IconLife, IconLengthen, IconShoot, IconSplit, IconSpeedUp, IconBarrier, IconShoot, IconLengthen, IconScore, IconSlowDown},
	},
	{
		Number: 10,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- HAPY HAPY ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- HAPY ---- ---- HAPY ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE BLUE",
			"---- RED_ ---- RED_ ---- RED_ ---- ---- RED_ ---- RED_ ---- RED_ ----",
			"---- ---- ---- ---- ---- ---- PINK UK__ ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- KNYA PINK ---- ---- ---- ---- ---- ----",
			"BLUE ---- BLUE ---- BLUE ---- BLUE BLUE ---- BLUE ---- BLUE ---- BLUE",
			"RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_ RED_",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- SAD_ ---- ---- SAD_ ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- SAD_ SAD_ ---- ---- ---- ---- ---- ----",
		},
		Icons: []IconKind{IconInvincible, IconLengthen, IconScore, IconBarrier, IconShorten, IconSpeedUp, IconShoot},
	},
	{
		Number: 11,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- HAPY SAD_ ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"GREY ---- GREY ---- GREY ---- GREY ---- GREY ---- GREY ---- GREY ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"BLOK PINK BLOK PINK BLOK PINK BLOK PINK BLOK PINK BLOK PINK BLOK PINK",
			"BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ----",
			"BLOK BLUL BLOK REDL BLOK BLUL BLOK REDL BLOK BLUL BLOK REDL BLOK BLUL",
			"BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ----",
			"BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ----",
			"BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ----",
			"BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ----",
			"BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ----",
			"BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ---- BLOK ----",
		},
		Icons: []IconKind{IconLengthen, IconMagnet, IconBarrier, IconSlowDown, IconMagnet, IconLengthen, IconLife, IconLife},
	},
	{
		Number: 12,
		Grid: []string{
			"---- ---- ---- ---- REDB ---- BONB KNYA ---- REDB ---- ---- ---- ----",
			"AQUA ---- ---- PINK ---- ---- UK__ BONO ---- ---- PINK ---- ---- AQUA",
			"---- ---- REDB ---- ---- ---- BONN KNYA ---- ---- ---- REDB ---- ----",
			"AQUA ---- ---- PINK ---- ---- UK__ BONU ---- ---- PINK ---- ---- AQUA",
			"---- ---- ---- ---- RGRY ---- BONS KNYA ---- LGRY ---- ---- ---- ----",
			"AQUA ---- ---- ---- RGRY ---- ---- ---- ---- LGRY ---- ---- ---- AQUA",
			"---- ---- ---- ---- MUL4 RGRY MUL4 MUL4 LGRY MUL4 ---- ---- ---- ----",
			"AQUA ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- AQUA",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"BLUE BLUE ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- BLUE BLUE",
			"BLUE BLUE ---- ---- ---- MUL2 ---- ---- MUL2 ---- ---- ---- BLUE BLUE",
		},
		Icons: []IconKind{IconSlowDown, IconScore, IconSpeedUp, IconSplit, IconLengthen, IconLengthen, IconLife},
	},
	{
		Number: 13,
		Grid: []string{
			"---- GREY ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- GREY ---- ---- ---- GRYL GRYL ---- ---- ---- ---- ---- ----",
			"---- ---- NWAL ---- ---- GRYL GRYL GRYL GRYL ---- ---- ---- ---- ----",
			"---- ---- NWAL ---- GRYL GRYL GRYL GRYL GRYL GRYL ---- ---- ---- ----",
			"---- ---- NWAL GRYL GRYL GRYL GRYL GRYL GRYL GRYL GRYL ---- ---- ----",
			"---- ---- GRYL GRYL GRYL GRYL GRYL GRYL GRYL GRYL GRYL GRYL ---- ----",
			"---- GRYL GRYL GRYL GRYL GRYL GRYL GRYL GRYL GRYL GRYL GRYL GRYL ----",
			"---- RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL NWAL ----",
			"---- RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL NWAL ----",
			"---- NWAL RED_ RED_ RED_ RWAL RWAL RWAL NWAL RED_ RED_ RED_ NWAL ----",
			"---- NWAL RED_ HAPY RED_ RWAL RWAL RWAL NWAL RED_ HAPY RED_ NWAL ----",
			"---- NWAL RED_ RED_ RED_ RWAL RWAL RWAL NWAL RED_ RED_ RED_ NWAL ----",
			"---- RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL NWAL ----",
			"---- RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL NWAL ----",
			"---- RWAL RWAL RWAL RWAL NWAL GRN_ GRN_ RWAL RWAL RWAL RWAL NWAL ----",
			"---- RWAL RWAL RWAL RWAL NWAL GRN_ GRN_ RWAL RWAL RWAL RWAL NWAL ----",
			"---- RWAL RWAL RWAL RWAL NWAL BLOK BLOK RWAL RWAL RWAL RWAL NWAL ----",
			"---- RWAL RWAL RWAL RWAL NWAL GRN_ GRN_ RWAL RWAL RWAL RWAL NWAL ----",
			"---- RWAL RWAL RWAL RWAL NWAL GRN_ GRN_ RWAL RWAL RWAL RWAL NWAL ----",
		},
		Icons: []IconKind{IconLengthen, IconScore, IconInvincible, IconSplit, IconLengthen, IconShorten, IconLengthen, IconShorten, IconLife, IconSplit, IconSpeedUp},
	},
	{
		Number: 14,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- REDL ----",
			"---- ---- ---- ---- ---- ---- REDL ---- ---- BLUE ---- REDL GREY REDL",
			"---- ---- REDL ---- ---- REDL BONO REDL ---- BLUE ---- ---- REDL ----",
			"---- REDL BONB REDL ---- ---- REDL ---- ---- ---- ---- ---- ---- ----",
			"---- ---- REDL ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- REDL ---- ---- ---- ----",
			"---- ---- ---- ---- GRN_ GRN_ ---- ---- REDL BONU REDL ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- REDL ---- ---- ---- ----",
			"---- ---- ---- ---- REDL ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"HAPY HAPY ---- REDL BONN REDL ---- ---- ---- ---- ---- ---- ---- ----",
			"---- SAD_ SAD_ ---- REDL ---- ---- ---- GRN_ GRN_ ---- ---- REDL ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- REDL BONS REDL",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- REDL ----",
			"---- ---- ---- REDB PINK ---- ---- REDL ---- ---- ---- ---- ---- ----",
			"---- REDL ---- ---- ---- ---- REDL GRYL REDL ---- ---- ---- ---- ----",
			"REDL GREY REDL ---- ---- ---- ---- REDL ---- ---- ---- ---- ---- ----",
			"---- REDL ---- ---- HAPY ---- ---- ---- ---- ---- SAD_ ---- ---- ----",
			"---- ---- ---- ---- SAD_ HAPY SAD_ ---- ---- ---- SAD_ HAPY SAD_ ----",
			"---- ---- ---- ---- ---- HAPY ---- ---- ---- ---- ---- HAPY ---- ----",
		},
		Icons: []IconKind{IconLengthen, IconScore, IconAdvance, IconLengthen, IconInvincible, IconLife, IconSpeedUp, IconSplit},
	},
	{
		Number: 15,
		Grid: []string{
			"---- ---- ---- AQUL ---- ---- ---- ---- ---- ---- AQUL ---- ---- ----",
			"---- ---- REDL NWAL REDL ---- ---- ---- ---- REDL NWAL REDL ---- ----",
			"---- BLUL REDL CUP_ REDL AQUL AQUL AQUL AQUL REDL CUP_ REDL BLUL ----",
			"BLUL NWAL REDL NWAL REDL ---- CUP_ CUP_ ---- REDL NWAL REDL NWAL BLUL",
			"BLUL RWAL NWAL BLUL ---- NWAL CUP_ CUP_ NWAL ---- BLUL RWAL NWAL BLUL",
			"AQUL RWAL NWAL REDL REDL REDL REDL REDL REDL REDL REDL RWAL NWAL AQUL",
			"REDL RWAL NWAL GRNL ---- NWAL CUP_ CUP_ NWAL ---- GRNL RWAL NWAL REDL",
			"REDL NWAL BLUL NWAL BLUL ---- CUP_ CUP_ ---- BLUL NWAL BLUL NWAL REDL",
			"---- REDL BLUL CUP_ BLUL GRNL GRNL GRNL GRNL BLUL CUP_ BLUL REDL ----",
			"---- ---- BLUL NWAL BLUL ---- ---- ---- ---- BLUL NWAL BLUL ---- ----",
			"---- ---- ---- GRNL ---- ---- ---- ---- ---- ---- GRNL ---- ---- ----",
		},
		Icons: []IconKind{IconLengthen, IconShoot, IconSplit, IconBarrier, IconShorten, IconLengthen, IconInvincible, IconScore, IconMagnet},
	},
	{
		Number: 16,
		Grid: []string{
			"---- ---- ---- ---- RWAL NWAL RED_ RED_ RWAL NWAL ---- ---- ---- ----",
			"---- UK__ UK__ UK__ REDB ---- REDB REDB ---- REDB KNYA KNYA KNYA ----",
			"REDB ---- ---- ---- CUP_ CUP_ BBB_ FNM_ CUP_ CUP_ ---- ---- ---- REDB",
			"---- ---- ---- ---- ---- GREY ---- ---- GREY ---- ---- ---- ---- ----",
			"---- ---- ---- GREY GREY RED_ ---- ---- BLUE GREY GREY ---- ---- ----",
			"---- ---- GREY ---- ---- ---- BLUE RED_ ---- ---- ---- GREY ---- ----",
			"---- ---- GREY ---- ---- ---- RED_ BLUE ---- ---- ---- GREY ---- ----",
			"---- ---- GREY ---- ---- GRN_ ---- ---- GRN_ ---- ---- GREY ---- ----",
			"---- ---- BONB BONO BONN BONU BONS LGRY LGRY LGRY LGRY LGRY ---- ----",
			"---- MUL4 ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- MUL4 ----",
			"MUL4 ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- MUL4",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- MUL2 MUL1 MUL1 MUL2 ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL NWAL",
		},
		Icons: []IconKind{IconLengthen, IconShoot, IconBarrier, IconMagnet, IconAdvance, IconLife, IconScore, IconShorten, IconSpeedUp, IconSlowDown},
	},
	{
		Number: 17,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- HAPY HAPY ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- BLUE BLUE ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- KNYA KNYA ---- ---- UK__ UK__ ---- ---- ---- ----",
			"---- ---- ---- ---- REDL REDL ---- ---- REDL REDL ---- ---- ---- ----",
			"---- ---- BLUE BLUE ---- ---- ---- ---- ---- ---- BLUE BLUE ---- ----",
			"---- ---- BLUE BLUE ---- ---- ---- ---- ---- ---- BLUE BLUE ---- ----",
			"---- ---- ---- ---- GRNL GRNL ---- ---- GRNL GRNL ---- ---- ---- ----",
			"---- ---- ---- ---- GRNL BLOK ---- ---- BLOK GRNL ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- AQUA AQUA ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- AQUA AQUA ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- GRNL BLOK ---- ---- BLOK GRNL ---- ---- ---- ----",
			"---- ---- ---- ---- GRNL GRNL ---- ---- GRNL GRNL ---- ---- ---- ----",
			"---- ---- BLUE BLUE ---- ---- ---- ---- ---- ---- BLUE BLUE ---- ----",
			"---- ---- BLUE BLUE ---- ---- ---- ---- ---- ---- BLUE BLUE ---- ----",
			"GREY RGRY ---- ---- REDL REDL ---- ---- REDL REDL ---- ---- LGRY GREY",
			"RGRY GREY ---- ---- CUP_ FNM_ ---- ---- BBB_ CUP_ ---- ---- GREY LGRY",
		},
		Icons: []IconKind{IconInvincible, IconSpeedUp, IconScore, IconShoot, IconBarrier, IconLengthen, IconMagnet, IconSlowDown},
	},
	{
		Number: 18,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- REDL ---- ---- ---- ---- REDL ---- ---- ---- ----",
			"---- ---- ---- REDL GRNL ---- ---- ---- ---- GRNL REDL ---- ---- ----",
			"---- ---- ---- GRNL GRNL ---- ---- ---- ---- GRNL GRNL ---- ---- ----",
			"---- ---- ---- GRNL BLUL ---- ---- ---- ---- BLUL GRNL ---- ---- ----",
			"---- ---- ---- BLUL AQUL ---- BLUL BLUL ---- AQUL BLUL ---- ---- ----",
			"---- ---- ---- AQUL AQUL BLUL RED_ RED_ BLUL AQUL AQUL ---- ---- ----",
			"---- ---- ---- BLUL AQUL ---- BLUL BLUL ---- AQUL BLUL ---- ---- ----",
			"---- ---- ---- GRNL BLUL ---- ---- ---- ---- BLUL GRNL ---- ---- ----",
			"---- ---- ---- GRNL GRNL ---- ---- ---- ---- GRNL GRNL ---- ---- ----",
			"---- ---- ---- REDL GRNL ---- ---- ---- ---- GRNL REDL ---- ---- ----",
			"BLOK ---- ---- ---- REDL ---- ---- ---- ---- REDL ---- ---- ---- BLOK",
			"---- MUL4 ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- MUL4 ----",
			"---- ---- BLOK ---- ---- ---- ---- ---- ---- ---- ---- BLOK ---- ----",
			"---- ---- ---- BLOK ---- ---- ---- ---- ---- ---- BLOK ---- ---- ----",
			"---- ---- ---- ---- BLOK ---- ---- ---- ---- BLOK ---- ---- ---- ----",
			"---- ---- ---- ---- ---- BLOK BLOK BLOK BLOK ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- BLOK RED_ RED_ BLOK ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- BLOK MUL4 MUL4 BLOK ---- ---- ---- ---- ----",
		},
		Icons: []IconKind{IconSlowDown, IconMagnet, IconLife, IconLengthen, IconSpeedUp, IconSpeedUp, IconScore, IconBarrier, IconBarrier, IconLife},
	},
	{
		Number: 19,
		Grid: []string{
			"REDL GRYL ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- GRYL REDL",
			"---- REDL BLUL GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL BLUL REDL ----",
			"---- ---- REDL BLUL ---- ---- ---- ---- ---- ---- BLUL REDL ---- ----",
			"---- ---- ---- REDL BLUL ---- ---- ---- ---- BLUL REDL ---- ---- ----",
			"---- ---- ---- ---- REDL PINK ---- ---- PINK REDL ---- ---- ---- ----",
			"---- ---- ---- ---- ---- REDL BLUL BLUL REDL ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- GRYL UK__ KNYA GRYL ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- GRYL KNYA UK__ GRYL ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- REDL BLUL BLUL REDL ---- ---- ---- ---- ----",
			"---- ---- ---- ---- REDL PINK ---- ---- PINK REDL ---- ---- ---- ----",
			"---- ---- ---- REDL BLUL ---- ---- ---- ---- BLUL REDL ---- ---- ----",
			"---- ---- REDL BLUL ---- ---- ---- ---- ---- ---- BLUL REDL ---- ----",
			"---- REDL BLUL GRNL GRNL GRNL GRNL GRNL GRNL GRNL GRNL BLUL REDL ----",
			"REDL GRYL ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- GRYL REDL",
		},
		Icons: []IconKind{IconSplit, IconInvincible, IconAdvance, IconLife, IconScore, IconShorten, IconSpeedUp, IconSlowDown},
	},
	{
		Number: 20,
		Grid: []string{
			"SAD_ SAD_ ---- ---- CUP_ ---- ---- ---- ---- CUP_ ---- ---- SAD_ SAD_",
			"SAD_ ---- ---- CUP_ CUP_ CUP_ ---- ---- CUP_ CUP_ CUP_ ---- ---- SAD_",
			"---- ---- ---- ---- CUP_ ---- ---- ---- ---- CUP_ ---- ---- ---- ----",
			"---- ---- ---- ---- ---- MUL4 MUL4 MUL4 MUL4 ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- MUL4 PINK PINK MUL4 ---- ---- ---- ---- ----",
			"---- ---- BBB_ ---- ---- MUL4 RED_ RED_ MUL4 ---- ---- FNM_ ---- ----",
			"---- BBB_ REDB BBB_ ---- MUL4 RED_ RED_ MUL4 ---- FNM_ REDB FNM_ ----",
			"---- BBB_ REDB BBB_ ---- MUL4 RED_ RED_ MUL4 ---- FNM_ REDB FNM_ ----",
			"---- ---- BBB_ ---- ---- MUL4 RED_ RED_ MUL4 ---- ---- FNM_ ---- ----",
			"---- ---- ---- ---- ---- MUL4 PINK PINK MUL4 ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- MUL4 MUL4 MUL4 MUL4 ---- ---- ---- ---- ----",
			"---- ---- ---- ---- CUP_ ---- ---- ---- ---- CUP_ ---- ---- ---- ----",
			"SAD_ ---- ---- CUP_ CUP_ CUP_ ---- ---- CUP_ CUP_ CUP_ ---- ---- SAD_",
			"SAD_ SAD_ ---- ---- CUP_ ---- ---- ---- ---- CUP_ ---- ---- SAD_ SAD_",
		},
		Icons: []IconKind{IconLengthen, IconInvincible, IconSplit, IconShoot, IconLengthen, IconShorten, IconMagnet, IconShoot},
	},
	{
		Number: 21,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- HAPY ---- ---- ---- ---- HAPY HAPY ---- ---- ---- ---- HAPY ----",
			"---- SAD_ REDL ---- ---- ---- KNYA REDL ---- ---- ---- REDL SAD_ ----",
			"---- ---- KNYA REDL ---- ---- REDL UK__ ---- ---- REDL UK__ ---- ----",
			"---- ---- ---- REDL REDL ---- KNYA REDL ---- REDL REDL ---- ---- ----",
			"---- ---- ---- ---- KNYA REDL REDL UK__ REDL UK__ ---- ---- ---- ----",
			"---- ---- ---- ---- ---- REDL ---- ---- REDL ---- ---- ---- ---- ----",
			"HAPY REDL KNYA REDL KNYA ---- PINK PINK ---- UK__ REDL UK__ REDL HAPY",
			"SAD_ KNYA REDL KNYA REDL ---- PINK PINK ---- REDL UK__ REDL UK__ SAD_",
			"---- ---- ---- ---- ---- REDL ---- ---- REDL ---- ---- ---- ---- ----",
			"---- ---- ---- ---- KNYA REDL REDL UK__ REDL UK__ ---- ---- ---- ----",
			"---- ---- ---- REDL REDL ---- KNYA REDL ---- REDL REDL ---- ---- ----",
			"---- ---- KNYA REDL ---- ---- REDL UK__ ---- ---- REDL UK__ ---- ----",
			"---- HAPY REDL ---- ---- ---- KNYA REDL ---- ---- ---- REDL HAPY ----",
			"---- SAD_ ---- ---- ---- ---- SAD_ SAD_ ---- ---- ---- ---- SAD_ ----",
		},
		Icons: []IconKind{IconLife, IconShoot, IconSplit, IconSlowDown, IconInvincible, IconLengthen, IconSpeedUp, IconScore, IconShorten},
	},
	{
		Number: 22,
		Grid: []string{
			"REDB ---- ---- REDB ---- GRN_ ---- ---- GRN_ ---- REDB ---- ---- REDB",
			"REDB REDB REDB REDB ---- GRN_ GRN_ GRN_ GRN_ ---- REDB REDB REDB REDB",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- AQUA AQUA AQUA AQUA AQUA AQUA AQUA AQUA ---- ---- ----",
			"GRN_ GRN_ ---- AQUA ---- ---- ---- ---- ---- ---- AQUA ---- GRN_ GRN_",
			"---- GRN_ ---- RED_ ---- ---- ---- ---- ---- ---- RED_ ---- GRN_ ----",
			"---- GRN_ ---- ---- ---- RED_ ---- ---- RED_ ---- ---- ---- GRN_ ----",
			"---- GRN_ ---- ---- ---- AQUA AQUA AQUA AQUA ---- ---- ---- GRN_ ----",
			"---- GRN_ ---- ---- ---- RED_ ---- ---- RED_ ---- ---- ---- GRN_ ----",
			"---- GRN_ ---- RED_ ---- ---- ---- ---- ---- ---- RED_ ---- GRN_ ----",
			"GRN_ GRN_ ---- AQUA ---- ---- ---- ---- ---- ---- AQUA ---- GRN_ GRN_",
			"---- ---- ---- AQUA AQUA AQUA AQUA AQUA AQUA AQUA AQUA ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"REDB REDB REDB REDB ---- GRN_ GRN_ GRN_ GRN_ ---- REDB REDB REDB REDB",
			"REDB ---- ---- REDB ---- GRN_ ---- ---- GRN_ ---- REDB ---- ---- REDB",
		},
		Icons: []IconKind{IconLengthen, IconLengthen, IconBarrier, IconSlowDown, IconSpeedUp, IconAdvance, IconScore, IconShorten, IconShoot},
	},
	{
		Number: 23,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- MUL4 MUL4 ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- GREY REDL REDL GREY ---- ---- ---- ---- ----",
			"---- ---- ---- ---- GREY BLUL CUP_ CUP_ BLUL GREY ---- ---- ---- ----",
			"---- ---- ---- GREY BLUL CUP_ CUP_ CUP_ CUP_ BLUL GREY ---- ---- ----",
			"---- ---- GREY GRNL GRNL BBB_ BBB_ BBB_ BBB_ GRNL GRNL GREY ---- ----",
			"NWAL BONS RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL RWAL NWAL GREY NWAL",
			"---- ---- BONU GRNL GRNL FNM_ FNM_ FNM_ FNM_ GRNL GRNL GREY ---- ----",
			"---- ---- ---- BONN BLUL CUP_ CUP_ CUP_ CUP_ BLUL GREY ---- ---- ----",
			"---- ---- ---- ---- BONO BLUL CUP_ CUP_ BLUL GREY ---- ---- ---- ----",
			"---- ---- ---- ---- ---- BONB REDL REDL GREY ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- MUL4 MUL4 ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- GRN_ ---- GRN_ ---- ---- ---- ---- GRN_ ---- GRN_ ---- ----",
			"---- ---- ---- GRN_ ---- ---- ---- ---- ---- ---- GRN_ ---- ---- ----",
			"---- ---- GRN_ ---- GRN_ ---- ---- ---- ---- GRN_ ---- GRN_ ---- ----",
			"---- GRN_ ---- GRN_ ---- GRN_ ---- ---- GRN_ ---- GRN_ ---- GRN_ ----",
			"PINK ---- GRN_ ---- GRN_ ---- PINK PINK ---- GRN_ ---- GRN_ ---- PINK",
		},
		Icons: []IconKind{IconShoot, IconLengthen, IconScore, IconSplit, IconInvincible, IconSpeedUp, IconShorten, IconShorten, IconLife},
	},
	{
		Number: 24,
		Grid: []string{
			"REDB REDB ---- ---- ---- ---- PINK PINK ---- ---- ---- ---- REDB REDB",
			"REDB ---- ---- ---- ---- AQUL ---- ---- AQUL ---- ---- ---- ---- REDB",
			"---- ---- ---- ---- AQUL GRNL REDL REDL GRNL AQUL ---- ---- ---- ----",
			"---- ---- ---- ---- ---- AQUL ---- ---- AQUL ---- ---- ---- ---- ----",
			"---- ---- ---- PINK PINK ---- PINK PINK ---- PINK PINK ---- ---- ----",
			"---- ---- AQUL ---- REDL RGRY ---- ---- LGRY REDL ---- AQUL ---- ----",
			"---- AQUL ---- REDL ---- ---- AQUL AQUL ---- ---- REDL ---- AQUL ----",
			"PINK PINK REDL GRNL REDL AQUL BLOK BLOK AQUL REDL GRNL REDL PINK PINK",
			"---- AQUL ---- REDL ---- ---- AQUL AQUL ---- ---- REDL ---- AQUL ----",
			"---- ---- AQUL ---- REDL RGRY ---- ---- LGRY REDL ---- AQUL ---- ----",
			"---- ---- ---- PINK PINK ---- PINK PINK ---- PINK PINK ---- ---- ----",
			"---- ---- ---- ---- ---- AQUL ---- ---- AQUL ---- ---- ---- ---- ----",
			"---- ---- ---- ---- AQUL GRNL REDL REDL GRNL AQUL ---- ---- ---- ----",
			"REDB ---- ---- ---- ---- AQUL ---- ---- AQUL ---- ---- ---- ---- REDB",
			"REDB REDB ---- ---- ---- ---- PINK PINK ---- ---- ---- ---- REDB REDB",
		},
		Icons: []IconKind{IconInvincible, IconShoot, IconBarrier, IconScore, IconSpeedUp, IconSlowDown, IconLengthen, IconShoot, IconShorten, IconSpeedUp, IconMagnet, IconLife},
	},
	{
		Number: 25,
		Grid: []string{
			"REDL PINK ---- ---- ---- HAPY ---- ---- HAPY ---- ---- ---- PINK REDL",
			"REDL ---- GREY GREY ---- ---- HAPY HAPY ---- ---- GREY GREY ---- REDL",
			"---- ---- ---- ---- GREY HAPY ---- ---- HAPY GREY ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- REDL ---- ---- GRNL ---- ---- GRNL ---- ---- BLUL ---- ----",
			"---- REDL CUP_ BLUL ---- ---- GRNL GRNL ---- ---- BLUL CUP_ REDL ----",
			"---- BLUL CUP_ REDL ---- ---- GRNL GRNL ---- ---- REDL CUP_ BLUL ----",
			"---- ---- REDL ---- ---- GRNL ---- ---- GRNL ---- ---- BLUL ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- BLOK BLOK BLOK BLOK BLOK BLOK ---- ---- ---- ----",
			"---- ---- ---- BLOK BLUL REDL BLUL REDL BLUL REDL BLOK ---- ---- ----",
			"---- ---- BLOK BLUL REDL BLUL REDL BLUL REDL BLUL REDL BLOK ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- PINK PINK ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- PINK PINK ---- ---- ---- ---- ---- ----",
		},
		Icons: []IconKind{IconLife, IconSpeedUp, IconLengthen, IconInvincible, IconSplit, IconMagnet, IconScore, IconShorten, IconSlowDown, IconAdvance},
	},
	{
		Number: 26,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- GRN_ ---- GRN_ ---- ---- ---- ---- RED_ ---- ---- ---- ---- ----",
			"RED_ ---- ---- ---- RED_ ---- ---- GRN_ HAPY GRN_ ---- ---- ---- ----",
			"RED_ ---- ---- ---- RED_ ---- ---- ---- RED_ ---- ---- ---- GRN_ ----",
			"---- RED_ ---- RED_ ---- ---- ---- ---- ---- ---- ---- RED_ ---- ----",
			"---- RED_ ---- RED_ ---- ---- ---- ---- ---- ---- GRN_ ---- ---- ----",
			"---- ---- BBB_ ---- ---- ---- ---- ---- ---- RED_ ---- ---- ---- SAD_",
			"---- ---- CUP_ ---- ---- ---- ---- ---- GRN_ ---- ---- ---- SAD_ ----",
			"---- ---- BBB_ ---- ---- ---- ---- RED_ ---- ---- ---- ---- ---- ----",
			"GREY GREY GREY GREY GREY GREY GREY GREY GREY GREY GREY GREY GREY GREY",
			"---- ---- ---- ---- ---- ---- GRN_ ---- ---- ---- ---- FNM_ ---- ----",
			"---- HAPY ---- ---- ---- RED_ ---- ---- ---- ---- ---- CUP_ ---- ----",
			"HAPY ---- ---- ---- GRN_ ---- ---- ---- ---- ---- ---- FNM_ ---- ----",
			"---- ---- ---- RED_ ---- ---- ---- ---- ---- ---- GRN_ ---- GRN_ ----",
			"---- ---- GRN_ ---- ---- ---- ---- ---- ---- ---- GRN_ ---- GRN_ ----",
			"---- RED_ ---- ---- ---- GRN_ ---- ---- ---- GRN_ ---- ---- ---- GRN_",
			"---- ---- ---- ---- RED_ SAD_ RED_ ---- ---- GRN_ ---- ---- ---- GRN_",
			"---- ---- ---- ---- ---- GRN_ ---- ---- ---- ---- RED_ ---- RED_ ----",
		},
		Icons: []IconKind{IconLengthen, IconShorten, IconShorten, IconSpeedUp, IconSlowDown, IconScore, IconSplit, IconSpeedUp, IconBarrier},
	},
	{
		Number: 27,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- RED_ RED_ AQUA AQUA ---- ---- ---- ---- ----",
			"---- ---- ---- ---- GRYL ---- ---- ---- ---- GRYL ---- ---- ---- ----",
			"---- ---- ---- BLUE ---- ---- AQUA RED_ ---- ---- GRN_ ---- ---- ----",
			"---- ---- ---- BLUE ---- GRN_ ---- ---- BLUE ---- GRN_ ---- ---- ----",
			"---- ---- ---- GRN_ ---- BLUE ---- ---- GRN_ ---- BLUE ---- ---- ----",
			"---- ---- ---- GRN_ ---- ---- RED_ AQUA ---- ---- BLUE ---- ---- ----",
			"---- ---- ---- ---- GRYL ---- ---- ---- ---- GRYL ---- ---- ---- ----",
			"---- ---- ---- ---- ---- AQUA AQUA RED_ RED_ ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"RGRY GRN_ REDB GRN_ REDB GRN_ REDB REDB GRN_ REDB GRN_ REDB GRN_ LGRY",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"RGRY ---- ---- GRN_ PINK GRN_ PINK PINK GRN_ PINK GRN_ ---- ---- LGRY",
			"---- ---- HAPY ---- ---- ---- ---- ---- ---- ---- ---- HAPY ---- ----",
			"RGRY ---- ---- ---- ---- GRN_ REDB REDB GRN_ ---- ---- ---- ---- LGRY",
			"---- ---- HAPY ---- CUP_ ---- ---- ---- ---- CUP_ ---- HAPY ---- ----",
			"BLOK BLOK BLOK BLOK BLOK BLOK MUL4 MUL4 BLOK BLOK BLOK BLOK BLOK BLOK",
			"BLOK BLOK BLOK BLOK BLOK BLOK MUL4 MUL4 BLOK BLOK BLOK BLOK BLOK BLOK",
		},
		Icons: []IconKind{IconMagnet, IconLife, IconBarrier, IconLengthen, IconMagnet, IconLengthen, IconSpeedUp, IconShorten, IconScore, IconAdvance, IconSplit, IconSlowDown, IconLife},
	},
	{
		Number: 28,
		Grid: []string{
			"---- RGRY ---- ---- ---- MUL4 ---- ---- MUL4 ---- ---- ---- LGRY ----",
			"BLUL ---- REDL RGRY MUL4 ---- ---- ---- ---- MUL4 LGRY REDL ---- BLUL",
			"---- RGRY ---- MUL4 ---- ---- ---- ---- ---- ---- MUL4 ---- LGRY ----",
			"BLUL ---- REDL MUL4 ---- ---- ---- ---- ---- ---- MUL4 REDL ---- BLUL",
			"---- RGRY ---- MUL4 ---- ---- ---- ---- ---- ---- MUL4 ---- LGRY ----",
			"BLUL ---- REDL MUL4 ---- ---- ---- ---- ---- ---- MUL4 REDL ---- BLUL",
			"---- RGRY ---- MUL4 ---- ---- ---- ---- ---- ---- MUL4 ---- LGRY ----",
			"BLUL ---- REDL MUL4 ---- ---- HAPY HAPY ---- ---- MUL4 REDL ---- BLUL",
			"---- RGRY ---- MUL4 ---- ---- SAD_ SAD_ ---- ---- MUL4 ---- LGRY ----",
			"BLUL ---- REDL MUL4 ---- ---- ---- ---- ---- ---- MUL4 REDL ---- BLUL",
			"---- RGRY ---- MUL4 ---- ---- ---- ---- ---- ---- MUL4 ---- LGRY ----",
			"BLUL ---- REDL MUL4 ---- ---- ---- ---- ---- ---- MUL4 REDL ---- BLUL",
			"---- RGRY ---- MUL4 ---- ---- ---- ---- ---- ---- MUL4 ---- LGRY ----",
			"BLUL ---- REDL MUL4 ---- ---- ---- ---- ---- ---- MUL4 REDL ---- BLUL",
			"---- RGRY ---- MUL4 ---- ---- ---- ---- ---- ---- MUL4 ---- LGRY ----",
			"BLUL ---- REDL RGRY MUL4 ---- ---- ---- ---- MUL4 LGRY REDL ---- BLUL",
			"REDB REDB REDB REDB REDB MUL4 ---- ---- MUL4 REDB REDB REDB REDB REDB",
		},
		Icons: []IconKind{IconShoot, IconInvincible, IconScore, IconSplit, IconSpeedUp, IconLife, IconShoot, IconScore, IconLengthen, IconShorten, IconSpeedUp, IconShorten},
	},
	{
		Number: 29,
		Grid: []string{
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- BONO REDL REDL BLUL ---- ---- ---- ---- BONN REDL REDL BLUL ----",
			"---- REDL ---- ---- REDL ---- BLUE BLUE ---- REDL ---- ---- REDL ----",
			"---- REDL RWAL NWAL REDL ---- BLUE ---- ---- REDL RWAL NWAL REDL ----",
			"---- REDL ---- ---- REDL ---- BLUE ---- ---- REDL ---- ---- REDL ----",
			"---- BLUL REDL REDL BLUL ---- ---- ---- ---- BLUL REDL REDL BLUL ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- BONS REDL REDL AQUL ---- ---- ---- ---- ----",
			"---- ---- BLUE ---- ---- REDL ---- ---- REDL ---- BLUE BLUE ---- ----",
			"---- ---- BLUE BLUE ---- REDL ---- ---- REDL ---- ---- BLUE ---- ----",
			"---- ---- ---- ---- ---- REDL ---- ---- REDL ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- AQUL REDL REDL AQUL ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- BONB REDL REDL GRNL ---- ---- ---- ---- BONU REDL REDL GRNL ----",
			"---- REDL ---- ---- REDL ---- ---- BLUE ---- REDL ---- ---- REDL ----",
			"---- REDL RWAL NWAL REDL ---- ---- BLUE ---- REDL RWAL NWAL REDL ----",
			"---- REDL ---- ---- REDL ---- BLUE BLUE ---- REDL ---- ---- REDL ----",
			"---- GRNL REDL REDL GRNL ---- ---- ---- ---- GRNL REDL REDL GRNL ----",
		},
		Icons: []IconKind{IconInvincible, IconSpeedUp, IconMagnet, IconLengthen, IconSplit, IconLife, IconShorten, IconScore, IconSplit},
	},
	{
		Number: 30,
		Grid: []string{
			"REDL ---- ---- ---- ---- ---- REDL REDL ---- ---- ---- ---- ---- REDL",
			"CUP_ REDL AQUL AQUL AQUL REDL BLUL GRNL REDL AQUL AQUL AQUL REDL CUP_",
			"BBB_ AQUL RGRY RGRY RGRY AQUL GRNL BLUL AQUL LGRY LGRY LGRY AQUL FNM_",
			"CUP_ FNM_ REDL AQUL REDL ---- BLUL GRNL ---- REDL AQUL REDL BBB_ CUP_",
			"AQUL REDL AQUL CUP_ AQUL ---- GRNL BLUL ---- AQUL CUP_ AQUL REDL AQUL",
			"---- AQUL ---- REDL ---- ---- BLUL GRNL ---- ---- REDL ---- AQUL ----",
			"REDL ---- ---- ---- REDL AQUL AQUL AQUL AQUL REDL ---- ---- ---- REDL",
			"---- ---- ---- ---- ---- REDL GRNL BLUL REDL ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- REDL REDL ---- ---- ---- ---- ---- ----",
			"---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ---- ----",
			"---- ---- ---- MUL4 MUL4 ---- ---- ---- ---- MUL4 MUL4 ---- ---- ----",
			"---- ---- MUL4 ---- ---- MUL4 ---- ---- MUL4 ---- ---- MUL4 ---- ----",
			"---- ---- MUL4 ---- ---- MUL4 ---- ---- MUL4 ---- ---- MUL4 ---- ----",
			"---- ---- ---- ---- ---- MUL4 ---- ---- MUL4 ---- ---- MUL4 ---- ----",
			"---- ---- ---- ---- MUL4 ---- ---- ---- MUL4 ---- ---- MUL4 ---- ----",
			"---- ---- ---- ---- ---- MUL4 ---- ---- MUL4 ---- ---- MUL4 ---- ----",
			"---- ---- MUL4 ---- ---- MUL4 ---- ---- MUL4 ---- ---- MUL4 ---- ----",
			"---- ---- MUL4 ---- ---- MUL4 ---- ---- MUL4 ---- ---- MUL4 ---- ----",
			"---- ---- ---- MUL4 MUL4 ---- ---- ---- ---- MUL4 MUL4 ---- ---- ----",
		},
		Icons: []IconKind{IconShorten, IconLengthen, IconScore, IconScore, IconShoot, IconShoot, IconSpeedUp, IconBarrier, IconShorten, IconInvincible, IconSpeedUp, IconLengthen, IconSpeedUp, IconLife},
	},}
