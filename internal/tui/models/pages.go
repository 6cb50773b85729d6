package models

import (
	"github.com/Dallionking/stepview/internal/stepview"
	"github.com/Dallionking/stepview/internal/tui/styles"
)

// DemoPage identifies one screen of the demo.
type DemoPage int

const (
	PageBasicHorizontal DemoPage = iota
	PageVerticalReverse
	PageVerticalForward
	PageStateChange
	PageCustom
)

const demoPageCount = 5

// Vertical pages use shorter connectors so nine steps fit a normal terminal.
const verticalLineLengthDP = 20

type demoPage struct {
	title string
	notes string
	build func(opts ...stepview.Option) *stepview.View
}

var demoPages = [demoPageCount]demoPage{
	PageBasicHorizontal: {
		title: "Basic horizontal",
		notes: basicHorizontalNotes,
		build: func(opts ...stepview.Option) *stepview.View {
			return stepview.NewHorizontal(opts...).
				SetSteps(loremSteps()).
				SetNotCompletedLineDashed(false)
		},
	},
	PageVerticalReverse: {
		title: "Vertical (reverse)",
		notes: verticalReverseNotes,
		build: func(opts ...stepview.Option) *stepview.View {
			return stepview.NewVertical(opts...).
				SetLineLength(verticalLineLengthDP).
				SetSteps(checkoutSteps())
		},
	},
	PageVerticalForward: {
		title: "Vertical (forward)",
		notes: verticalForwardNotes,
		build: func(opts ...stepview.Option) *stepview.View {
			return stepview.NewVertical(opts...).
				SetLineLength(verticalLineLengthDP).
				SetReverse(false).
				SetSteps(checkoutSteps())
		},
	},
	PageStateChange: {
		title: "State changes",
		notes: stateChangeNotes,
		build: func(opts ...stepview.Option) *stepview.View {
			return stepview.NewHorizontal(opts...).
				SetSteps([]stepview.Step{
					stepview.NewStep("Lorem"),
					stepview.NewStep("Ipsum"),
					stepview.NewStep("Dolor"),
					stepview.NewStep("Sit"),
					stepview.NewStep("Amet"),
				})
		},
	},
	PageCustom: {
		title: "Custom",
		notes: customNotes,
		build: func(opts ...stepview.Option) *stepview.View {
			v := stepview.NewHorizontal(opts...).
				SetCompletedIcon(stepview.Icon{Glyph: "✔", Color: styles.WarmRed}).
				SetCurrentIcon(stepview.Icon{Glyph: "◉", Color: styles.WarmRed}).
				SetNotCompletedIcon(stepview.Icon{Glyph: "○", Color: styles.WarmAmber}).
				SetCompletedTextColor(styles.TextSecondary).
				SetNotCompletedTextColor(styles.TextSecondary).
				SetCurrentTextColor(styles.TextPrimary).
				SetCompletedLineColor(styles.WarmRed).
				SetNotCompletedLineColor(styles.WarmAmber).
				SetCircleRadius(15).
				SetLineLength(50)
			// 15sp is always valid.
			_ = v.SetTextSize(15)
			return v.SetSteps(loremSteps())
		},
	},
}

func loremSteps() []stepview.Step {
	return []stepview.Step{
		stepview.NewStepWithState("Lorem", stepview.Completed),
		stepview.NewStepWithState("Ipsum", stepview.Completed),
		stepview.NewStepWithState("Dolor", stepview.Current),
		stepview.NewStep("Sit"),
		stepview.NewStep("Amet"),
	}
}

func checkoutSteps() []stepview.Step {
	return []stepview.Step{
		stepview.NewStepWithState("1. Add items to cart", stepview.Completed),
		stepview.NewStepWithState("2. Proceed to checkout", stepview.Completed),
		stepview.NewStepWithState("3. Confirm checkout", stepview.Completed),
		stepview.NewStepWithState("4. Enter shipping address", stepview.Completed),
		stepview.NewStepWithState("5. Choose payment option", stepview.Completed),
		stepview.NewStepWithState("6. Enter payment information", stepview.Current),
		stepview.NewStep("7. Finish payment"),
		stepview.NewStep("8. Receive order confirmation email"),
		stepview.NewStep("9. Wait for delivery"),
	}
}

const basicHorizontalNotes = `# Basic horizontal

Five steps laid out left to right. Completed steps are joined by solid
bars; the connector into a step that is not completed yet is drawn
**solid** here because the dashed line type is switched off:

` + "```go" + `
stepview.NewHorizontal().
    SetSteps(steps).
    SetNotCompletedLineDashed(false)
` + "```" + `
`

const verticalReverseNotes = `# Vertical, reverse

A checkout flow drawn top to bottom with the **first step at the bottom**.
Reverse ordering is the default for vertical views.

Labels sit to the right of their icons and are centred on them.
`

const verticalForwardNotes = `# Vertical, forward

The same checkout flow with ` + "`SetReverse(false)`" + `: the first step is
at the top and progress reads downward.
`

const stateChangeNotes = `# State changes

Move the current marker with **←/→**. The step you leave gets back the
state it had before it became current. Press **t** to flip that saved
state between *completed* and *not completed* before moving on.

Watch the connectors: a segment's style follows the step it leads **to**.
`

const customNotes = `# Custom

Every visual can be replaced:

| Setting | Value |
|---|---|
| icons | ✔ ◉ ○ |
| completed line | ` + "`#ea655c`" + ` |
| pending line | ` + "`#eaac5c`" + ` |
| text size | 15sp |
| circle radius | 15dp |
| line length | 50dp |
`
