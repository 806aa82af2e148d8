package chains

import "strings"

// Info holds display metadata for one chain identifier
type Info struct {
	ShortName   string `json:"shortName"`
	DisplayName string `json:"displayName"`
	Logo        string `json:"logo"`
	Color       string `json:"color"`
}

const (
	defaultLogo  = "https://docs.chain.link/assets/chains/ethereum.svg"
	defaultColor = "#6B7280"
)

var mapping = map[string]Info{
	"ethereum-mainnet": {
		ShortName:   "ETH",
		DisplayName: "Ethereum",
		Logo:        "https://docs.chain.link/assets/chains/ethereum.svg",
		Color:       "#627EEA",
	},
	"ethereum-mainnet-arbitrum-1": {
		ShortName:   "ARB",
		DisplayName: "Arbitrum",
		Logo:        "https://docs.chain.link/assets/chains/arbitrum.svg",
		Color:       "#2D3748",
	},
	"ethereum-mainnet-base-1": {
		ShortName:   "BASE",
		DisplayName: "Base",
		Logo:        "https://docs.chain.link/assets/chains/base.svg",
		Color:       "#0052FF",
	},
	"avalanche-mainnet": {
		ShortName:   "AVAX",
		DisplayName: "Avalanche",
		Logo:        "https://docs.chain.link/assets/chains/avalanche.svg",
		Color:       "#E84142",
	},
	"binance_smart_chain-mainnet": {
		ShortName:   "BNB",
		DisplayName: "BNB Chain",
		Logo:        "https://docs.chain.link/assets/chains/bnb-chain.svg",
		Color:       "#F3BA2F",
	},
	"ronin-mainnet": {
		ShortName:   "RONIN",
		DisplayName: "Ronin",
		Logo:        "https://docs.chain.link/assets/chains/ronin.svg",
		Color:       "#0195F7",
	},
	"polygon-mainnet-katana": {
		ShortName:   "KATANA",
		DisplayName: "Katana",
		Logo:        "https://docs.chain.link/assets/chains/polygonkatana.svg",
		Color:       "#8247E5",
	},
	"gnosis_chain-mainnet": {
		ShortName:   "GNO",
		DisplayName: "Gnosis",
		Logo:        "https://docs.chain.link/assets/chains/gnosis-chain.svg",
		Color:       "#00A6C4",
	},
	"berachain-mainnet": {
		ShortName:   "BERA",
		DisplayName: "Berachain",
		Logo:        "https://docs.chain.link/assets/chains/berachain.svg",
		Color:       "#8B4513",
	},
	"sonic-mainnet": {
		ShortName:   "SONIC",
		DisplayName: "Sonic",
		Logo:        "https://docs.chain.link/assets/chains/sonic.svg",
		Color:       "#8B4513",
	},
	"ethereum-mainnet-optimism-1": {
		ShortName:   "OP",
		DisplayName: "Optimism",
		Logo:        "https://docs.chain.link/assets/chains/optimism.svg",
		Color:       "#8B4513",
	},
	"sei-mainnet": {
		ShortName:   "SEI",
		DisplayName: "Sei",
		Logo:        "https://docs.chain.link/assets/chains/sei.svg",
		Color:       "#8B4513",
	},
	"polygon-mainnet": {
		ShortName:   "POLY",
		DisplayName: "Polygon",
		Logo:        "https://docs.chain.link/assets/chains/polygon.svg",
		Color:       "#8B4513",
	},
	"ethereum-mainnet-unichain-1": {
		ShortName:   "UNI",
		DisplayName: "Unichain",
		Logo:        "https://docs.chain.link/assets/chains/unichain.svg",
		Color:       "#8B4513",
	},
	"polkadot-mainnet-astar": {
		ShortName:   "ASTAR",
		DisplayName: "Astar",
		Logo:        "https://docs.chain.link/assets/chains/astar.svg",
		Color:       "#8B4513",
	},
	"soneium-mainnet": {
		ShortName:   "SONE",
		DisplayName: "Soneium",
		Logo:        "https://docs.chain.link/assets/chains/soneium.svg",
		Color:       "#8B4513",
	},
	"bitcoin-mainnet-bitlayer-1": {
		ShortName:   "BIT",
		DisplayName: "Bitlayer",
		Logo:        "https://docs.chain.link/assets/chains/bitlayer.svg",
		Color:       "#8B4513",
	},
	"solana-mainnet": {
		ShortName:   "SOL",
		DisplayName: "Solana",
		Logo:        "https://docs.chain.link/assets/chains/solana.svg",
		Color:       "#8B4513",
	},
}

// Lookup returns display metadata for a chain identifier. It tries an exact
// match, then with a "-mainnet" suffix appended, then with the suffix
// stripped, and finally derives a name from the identifier itself.
func Lookup(chainName string) Info {
	if info, ok := mapping[chainName]; ok {
		return info
	}

	withMainnet := chainName
	if !strings.Contains(chainName, "-mainnet") {
		withMainnet = chainName + "-mainnet"
	}
	if info, ok := mapping[withMainnet]; ok {
		return info
	}

	withoutMainnet := strings.Replace(chainName, "-mainnet", "", 1)
	if info, ok := mapping[withoutMainnet]; ok {
		return info
	}

	return Info{
		ShortName:   deriveShortName(chainName),
		DisplayName: deriveDisplayName(chainName),
		Logo:        defaultLogo,
		Color:       defaultColor,
	}
}

// ShortName returns the short code for a chain identifier
func ShortName(chainName string) string {
	return Lookup(chainName).ShortName
}

// DisplayName returns the human-readable name for a chain identifier
func DisplayName(chainName string) string {
	return Lookup(chainName).DisplayName
}

// Logo returns the logo URL for a chain identifier
func Logo(chainName string) string {
	return Lookup(chainName).Logo
}

// Color returns the accent color for a chain identifier
func Color(chainName string) string {
	return Lookup(chainName).Color
}

// All returns a copy of the full mapping table
func All() map[string]Info {
	all := make(map[string]Info, len(mapping))
	for name, info := range mapping {
		all[name] = info
	}
	return all
}

func deriveShortName(chainName string) string {
	// Slice runes, not bytes, multibyte identifiers must not split mid-rune
	runes := []rune(chainName)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

func deriveDisplayName(chainName string) string {
	name := strings.Replace(chainName, "-mainnet", "", 1)
	name = strings.ReplaceAll(name, "-", " ")

	words := strings.Fields(name)
	for i, word := range words {
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[:1])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}
