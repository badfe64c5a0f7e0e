package dex

// Router entry points exposed by the deployed package.
const (
	EntryAddLiquidity    = "add_liquidity"
	EntryRemoveLiquidity = "remove_liquidity"
	EntrySwapExactXToY   = "swap_exact_x_to_y"
	EntrySwapExactYToX   = "swap_exact_y_to_x"
	EntrySwapXToExactY   = "swap_x_to_exact_y"
	EntrySwapYToExactX   = "swap_y_to_exact_x"
)

// RouterTarget returns the fully qualified move call target for a router
// entry point.
func RouterTarget(packageID, entry string) string {
	return packageID + "::router::" + entry
}
