package txn

// Plan is an ordered transaction description: coin merge/split commands
// followed by one or more move calls. It is the SDK's output artifact;
// signing and submission belong to the Submitter implementation.
type Plan struct {
	Commands []Command `json:"commands"`
}

// Command is a tagged union over the supported sub-operations.
type Command struct {
	Merge *MergeCoins `json:"merge_coins,omitempty"`
	Split *SplitCoin  `json:"split_coin,omitempty"`
	Call  *MoveCall   `json:"move_call,omitempty"`
}

// MergeCoins folds the source coin objects into the destination.
type MergeCoins struct {
	Destination string   `json:"destination"`
	Sources     []string `json:"sources"`
}

// SplitCoin carves an exact amount out of a coin object. The split result
// is referenced by the index of this command in the plan.
type SplitCoin struct {
	Coin   string `json:"coin"`
	Amount uint64 `json:"amount"`
}

// MoveCall invokes an entry point with ordered arguments and type
// arguments.
type MoveCall struct {
	Target        string     `json:"target"`
	TypeArguments []string   `json:"type_arguments"`
	Arguments     []Argument `json:"arguments"`
}

// MergeCoins appends a merge command.
func (p *Plan) MergeCoins(destination string, sources []string) {
	p.Commands = append(p.Commands, Command{Merge: &MergeCoins{Destination: destination, Sources: sources}})
}

// SplitCoin appends a split command and returns its result index.
func (p *Plan) SplitCoin(coin string, amount uint64) int {
	p.Commands = append(p.Commands, Command{Split: &SplitCoin{Coin: coin, Amount: amount}})
	return len(p.Commands) - 1
}

// MoveCall appends a move call command.
func (p *Plan) MoveCall(target string, typeArguments []string, arguments ...Argument) {
	p.Commands = append(p.Commands, Command{Call: &MoveCall{
		Target:        target,
		TypeArguments: typeArguments,
		Arguments:     arguments,
	}})
}
