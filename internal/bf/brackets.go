package bf

// BracketMap pairs every loop bracket index with its partner, in both directions.
type BracketMap map[int]int

// BuildBracketMap scans cmds once with an explicit stack of open indices.
func BuildBracketMap(cmds []Command) (BracketMap, error) {
	bm := make(BracketMap)
	var stack []int
	for i, c := range cmds {
		switch c {
		case LoopOpen:
			stack = append(stack, i)
		case LoopClose:
			if len(stack) == 0 {
				return nil, &UnbalancedLoopError{Index: i, Fault: StrayClose}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			bm[open] = i
			bm[i] = open
		}
	}
	if len(stack) > 0 {
		// the bottom of the stack is the earliest open that never closed
		return nil, &UnbalancedLoopError{Index: stack[0], Fault: UnmatchedOpen}
	}
	return bm, nil
}

// Loops returns the number of bracket pairs.
func (bm BracketMap) Loops() int { return len(bm) / 2 }

// Program is a cleaned, bracket-checked command stream.
type Program struct {
	Source   string
	Commands []Command
	Brackets BracketMap
}

// Compile cleans src and builds its bracket map.
func Compile(src string) (*Program, error) {
	cmds := Parse(src)
	bm, err := BuildBracketMap(cmds)
	if err != nil {
		return nil, err
	}
	return &Program{Source: Format(cmds), Commands: cmds, Brackets: bm}, nil
}

// Len is the number of commands.
func (p *Program) Len() int { return len(p.Commands) }
