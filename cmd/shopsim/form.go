package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/entrhq/shopsim/pkg/narration"
	"github.com/entrhq/shopsim/pkg/persona"
)

// errFormCancelled is returned when the user interrupts the guided form.
var errFormCancelled = errors.New("persona form cancelled")

// prompter asks one question and returns the trimmed answer.
type prompter interface {
	Prompt(label string) (string, error)
}

type readlinePrompter struct {
	rl *readline.Instance
}

func newReadlinePrompter() (*readlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, err
	}
	return &readlinePrompter{rl: rl}, nil
}

// Prompt reads one line. End of input counts as an empty answer.
func (p *readlinePrompter) Prompt(label string) (string, error) {
	p.rl.SetPrompt(label)
	line, err := p.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", errFormCancelled
	case errors.Is(err, io.EOF):
		return "", nil
	case err != nil:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *readlinePrompter) Close() error {
	return p.rl.Close()
}

var decisionMenu = map[string]persona.DecisionStyle{
	"1": persona.StyleQuickImpulsive,
	"2": persona.StyleResearchHeavy,
	"3": persona.StylePriceFocused,
	"4": persona.StyleQualityFocused,
	"5": persona.StyleIndecisive,
}

var timeMenu = map[string]persona.TimePreference{
	"1": persona.TimeQuick,
	"2": persona.TimeNormal,
	"3": persona.TimeExtended,
}

// collectSpec walks the user through creating a persona. Blank answers take the
// persona defaults; an unreadable budget falls back to the default range.
func collectSpec(p prompter, out io.Writer) (persona.Spec, error) {
	var spec persona.Spec
	ask := func(label string) (string, error) {
		return p.Prompt(label)
	}

	fmt.Fprintln(out, narration.TitleStyle.Render("\n🎭 CREATE YOUR CUSTOM SHOPPING PERSONA"))

	name, err := ask("👤 Persona name: ")
	if err != nil {
		return spec, err
	}
	spec.Name = name

	fmt.Fprintln(out, narration.MutedStyle.Render("\n🧠 Personality traits, comma separated (e.g. impulsive, careful, trendy, budget-conscious)"))
	traits, err := ask("🎯 Personality traits: ")
	if err != nil {
		return spec, err
	}
	spec.Traits = splitList(traits)

	fmt.Fprintln(out, narration.MutedStyle.Render("\n💰 Budget range"))
	minRaw, err := ask("   Minimum budget (₹): ")
	if err != nil {
		return spec, err
	}
	maxRaw, err := ask("   Maximum budget (₹): ")
	if err != nil {
		return spec, err
	}
	budget := parseBudget(minRaw, maxRaw)
	spec.Budget = &budget

	fmt.Fprintln(out, narration.MutedStyle.Render("\n🛍️ Shopping interests, comma separated (e.g. makeup, skincare, luxury brands)"))
	interests, err := ask("🛍️ Interests: ")
	if err != nil {
		return spec, err
	}
	spec.Interests = splitList(interests)

	fmt.Fprintln(out, narration.MutedStyle.Render("\n🎪 Goals for this session, comma separated (e.g. find birthday gift, restock essentials)"))
	goals, err := ask("🎯 Goals: ")
	if err != nil {
		return spec, err
	}
	spec.Goals = splitList(goals)

	fmt.Fprintln(out, narration.MutedStyle.Render(`
🤔 Decision making style:
   1. Quick and impulsive
   2. Research-heavy and careful
   3. Price-focused and practical
   4. Quality-focused and thorough
   5. Indecisive and changeable`))
	choice, err := ask("Choose (1-5): ")
	if err != nil {
		return spec, err
	}
	style, ok := decisionMenu[choice]
	if !ok {
		style = persona.StyleBalanced
	}
	spec.DecisionStyle = string(style)

	fmt.Fprintln(out, narration.MutedStyle.Render(`
⏰ Shopping time preference:
   1. Quick shopping (5-10 minutes)
   2. Normal browsing (10-15 minutes)
   3. Extended exploration (15+ minutes)`))
	choice, err = ask("Choose (1-3): ")
	if err != nil {
		return spec, err
	}
	pref, ok := timeMenu[choice]
	if !ok {
		pref = persona.TimeNormal
	}
	spec.TimePreference = string(pref)

	return spec, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func parseBudget(minRaw, maxRaw string) persona.BudgetRange {
	fallback := persona.BudgetRange{Min: persona.DefaultMinBudget, Max: persona.DefaultMaxBudget}
	if minRaw == "" {
		minRaw = strconv.Itoa(persona.DefaultMinBudget)
	}
	if maxRaw == "" {
		maxRaw = strconv.Itoa(persona.DefaultMaxBudget)
	}
	lo, err := strconv.Atoi(minRaw)
	if err != nil {
		return fallback
	}
	hi, err := strconv.Atoi(maxRaw)
	if err != nil {
		return fallback
	}
	return persona.BudgetRange{Min: lo, Max: hi}
}

func printPersona(out io.Writer, p *persona.Profile) {
	budget := p.Budget()
	var b strings.Builder
	b.WriteString(narration.TitleStyle.Render("✅ PERSONA CREATED: " + p.Name()))
	fmt.Fprintf(&b, "\n🎭 Type: %s", p.Category())
	fmt.Fprintf(&b, "\n🧠 Traits: %s", strings.Join(p.Traits(), ", "))
	fmt.Fprintf(&b, "\n💰 Budget: ₹%d-%d", budget.Min, budget.Max)
	fmt.Fprintf(&b, "\n🎯 Goals: %s", strings.Join(p.Goals(), ", "))
	fmt.Fprintf(&b, "\n⚡ Style: %s", p.DecisionStyle())
	fmt.Fprintln(out, "\n"+narration.BoxStyle.Render(b.String()))
}
