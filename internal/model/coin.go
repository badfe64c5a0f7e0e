package model

// Coin is one owned coin object of a given type.
type Coin struct {
	ObjectID string `json:"coinObjectId"`
	CoinType string `json:"coinType"`
	Balance  uint64 `json:"balance,string"`
}
