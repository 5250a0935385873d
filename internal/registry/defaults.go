package registry

// Default returns the built-in tracked-project registry. Bare tickers
// like "pol", "sol" and "arb" are intentional: strict token matching in
// the attribution engine keeps them from matching inside longer words.
func Default() *Registry {
	return &Registry{Projects: []Project{
		{Name: "BONK", Category: "Meme", Keywords: []string{"bonk", "$bonk", "bonkfun", "bonk.fun", "bonk dat"}},
		{Name: "Polygon", Category: "L2", Keywords: []string{"polygon", "matic", "$matic", "pol", "$pol", "agglayer", "sandeep"}},
		{Name: "Ethereum", Category: "L1", Keywords: []string{"ethereum", "eth", "$eth", "vitalik"}},
		{Name: "Solana", Category: "L1", Keywords: []string{"solana", "sol", "$sol"}},
		{Name: "Bitcoin", Category: "L1", Keywords: []string{"bitcoin", "btc", "$btc"}},
		{Name: "Arbitrum", Category: "L2", Keywords: []string{"arbitrum", "arb", "$arb"}},
		{Name: "Ripple", Category: "L1", Keywords: []string{"ripple", "xrp", "$xrp", "xrpl"}},
		{Name: "Binance", Category: "Exchange", Keywords: []string{"binance", "bnb", "$bnb", "cz"}},
		{Name: "Coinbase", Category: "Exchange", Keywords: []string{"coinbase", "$coin", "brian armstrong"}},
		{Name: "Base chain", Category: "L2", Keywords: []string{"base", "$base", "jesse pollak"}},
		{Name: "USDC", Category: "Stablecoin", Keywords: []string{"usdc", "$usdc"}},
		{Name: "USDT", Category: "Stablecoin", Keywords: []string{"usdt", "$usdt", "tether"}},
		{Name: "DAI", Category: "Stablecoin", Keywords: []string{"dai", "$dai"}},
		{Name: "Tron", Category: "L1", Keywords: []string{"tron", "trx", "$trx", "justin sun"}},
		{Name: "Dogecoin", Category: "Meme", Keywords: []string{"dogecoin", "doge", "$doge"}},
		{Name: "Cardano", Category: "L1", Keywords: []string{"cardano", "ada", "$ada", "hoskinson"}},
		{Name: "Hyperliquid", Category: "DeFi", Keywords: []string{"hyperliquid", "hl", "$hype"}},
		{Name: "Zcash", Category: "L1", Keywords: []string{"zcash", "zec", "$zec"}},
		{Name: "Chainlink", Category: "Infrastructure", Keywords: []string{"chainlink", "$link"}},
		{Name: "Stellar", Category: "L1", Keywords: []string{"stellar", "xlm", "$xlm"}},
		{Name: "Litecoin", Category: "L1", Keywords: []string{"litecoin", "ltc", "$ltc", "charlie lee", "charlie"}},
		{Name: "Monero", Category: "L1", Keywords: []string{"monero", "xmr", "$xmr"}},
		{Name: "Avalanche", Category: "L1", Keywords: []string{"avalanche", "avax", "$avax"}},
		{Name: "Hedera", Category: "L1", Keywords: []string{"hedera", "hbar", "$hbar"}},
		{Name: "Sui", Category: "L1", Keywords: []string{"sui", "$sui"}},
		{Name: "Shiba Inu", Category: "Meme", Keywords: []string{"shiba", "shib", "$shib", "shiba inu"}},
		{Name: "Polkadot", Category: "L1", Keywords: []string{"polkadot", "$dot"}},
		{Name: "Uniswap", Category: "DeFi", Keywords: []string{"uniswap", "uni", "$uni"}},
		{Name: "Toncoin", Category: "L1", Keywords: []string{"toncoin", "$ton"}},
		{Name: "Cronos", Category: "Exchange", Keywords: []string{"cronos", "cro", "$cro", "crypto.com"}},
		{Name: "Mantle", Category: "L2", Keywords: []string{"mantle", "mnt", "$mnt"}},
		{Name: "World Liberty Finance", Category: "L2", Keywords: []string{"world liberty finance", "wlf"}},
		{Name: "Astar", Category: "L2", Keywords: []string{"astar", "astr", "$astr"}},
		{Name: "Near Protocol", Category: "L1", Keywords: []string{"$near", "near protocol"}},
		{Name: "Internet Computer", Category: "Compute", Keywords: []string{"icp", "$icp", "internet computer"}},
		{Name: "Aave", Category: "DeFi", Keywords: []string{"aave", "$aave"}},
		{Name: "OKX", Category: "Exchange", Keywords: []string{"okx", "okb", "$okb"}},
		{Name: "Aptos", Category: "L1", Keywords: []string{"aptos", "apt", "$apt"}},
		{Name: "Pepe", Category: "Meme", Keywords: []string{"pepe", "$pepe"}},
		{Name: "KuCoin", Category: "Exchange", Keywords: []string{"kucoin", "kcs", "$kcs"}},
		{Name: "Cosmos", Category: "L1", Keywords: []string{"cosmos", "atom", "$atom"}},
		{Name: "Algorand", Category: "L1", Keywords: []string{"algorand", "algo", "$algo"}},
		{Name: "Filecoin", Category: "Storage", Keywords: []string{"filecoin", "fil", "$fil"}},
		{Name: "VeChain", Category: "L1", Keywords: []string{"vechain", "vet", "$vet"}},
		{Name: "Starknet", Category: "L2", Keywords: []string{"starknet", "strk", "$strk"}},
		{Name: "Pump.fun", Category: "DeFi", Keywords: []string{"pump.fun", "pumpfun", "$pump"}},
		{Name: "Flare", Category: "DeFi", Keywords: []string{"flare", "flr", "$flr"}},
		{Name: "Sei", Category: "L1", Keywords: []string{"sei", "$sei"}},
		{Name: "Jupiter", Category: "DeFi", Keywords: []string{"jupiter", "jup", "$jup"}},
		{Name: "Pudgy Penguins", Category: "Meme", Keywords: []string{"pudgy", "pengu", "penguin", "pudgy penguins"}},
		{Name: "Abstract", Category: "L2", Keywords: []string{"abstract"}},
		{Name: "Optimism", Category: "L2", Keywords: []string{"optimism", "$op"}},
		{Name: "Immutable", Category: "L2", Keywords: []string{"immutable", "imx", "$imx"}},
		{Name: "Injective", Category: "DeFi", Keywords: []string{"injective", "inj", "$inj"}},
		{Name: "Celestia", Category: "L2", Keywords: []string{"celestia", "tia", "$tia"}},
		{Name: "Curve", Category: "DeFi", Keywords: []string{"curve", "crv", "$crv"}},
		{Name: "Morpho", Category: "DeFi", Keywords: []string{"morpho"}},
		{Name: "The Graph", Category: "Infrastructure", Keywords: []string{"the graph", "grt", "$grt"}},
		{Name: "Tezos", Category: "L1", Keywords: []string{"tezos", "xtz", "$xtz"}},
		{Name: "Gala Games", Category: "Gaming", Keywords: []string{"gala", "$gala", "gala games"}},
		{Name: "Sonic", Category: "Meme", Keywords: []string{"sonic", "$sonic"}},
		{Name: "Raydium", Category: "DeFi", Keywords: []string{"raydium", "ray", "$ray"}},
		{Name: "Katana", Category: "L2", Keywords: []string{"katana", "kat", "$kat", "vkat", "avkat"}},
	}}
}
