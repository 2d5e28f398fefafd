package resolver

// cityAliases maps lower-cased city-name variants to a primary airport.
// The slice is scanned in order and the first match wins, so entries for
// more specific names must precede entries that could shadow them. All
// aliases are lower case; lookups normalize before scanning.
type cityEntry struct {
	city    string
	code    string
	aliases []string
}

var cityAliases = []cityEntry{
	{city: "new york", code: "JFK", aliases: []string{"new york", "nueva york", "nyc", "manhattan"}},
	{city: "los angeles", code: "LAX", aliases: []string{"los angeles", "los ángeles"}},
	{city: "san francisco", code: "SFO", aliases: []string{"san francisco"}},
	{city: "chicago", code: "ORD", aliases: []string{"chicago"}},
	{city: "miami", code: "MIA", aliases: []string{"miami"}},
	{city: "boston", code: "BOS", aliases: []string{"boston"}},
	{city: "seattle", code: "SEA", aliases: []string{"seattle"}},
	{city: "toronto", code: "YYZ", aliases: []string{"toronto"}},
	{city: "vancouver", code: "YVR", aliases: []string{"vancouver"}},
	{city: "mexico city", code: "MEX", aliases: []string{"mexico city", "ciudad de mexico", "ciudad de méxico", "cdmx"}},
	{city: "bogota", code: "BOG", aliases: []string{"bogota", "bogotá"}},
	{city: "lima", code: "LIM", aliases: []string{"lima"}},
	{city: "santiago", code: "SCL", aliases: []string{"santiago de chile", "santiago"}},
	{city: "buenos aires", code: "EZE", aliases: []string{"buenos aires"}},
	{city: "sao paulo", code: "GRU", aliases: []string{"sao paulo", "são paulo", "san pablo"}},
	{city: "london", code: "LHR", aliases: []string{"london", "londres", "londra"}},
	{city: "paris", code: "CDG", aliases: []string{"paris", "parís", "parigi"}},
	{city: "madrid", code: "MAD", aliases: []string{"madrid"}},
	{city: "barcelona", code: "BCN", aliases: []string{"barcelona", "barcelone"}},
	{city: "rome", code: "FCO", aliases: []string{"rome", "roma"}},
	{city: "milan", code: "MXP", aliases: []string{"milan", "milano", "milán"}},
	{city: "frankfurt", code: "FRA", aliases: []string{"frankfurt", "francfort", "fráncfort"}},
	{city: "munich", code: "MUC", aliases: []string{"munich", "münchen", "munchen", "monaco di baviera"}},
	{city: "berlin", code: "BER", aliases: []string{"berlin", "berlín", "berlino"}},
	{city: "amsterdam", code: "AMS", aliases: []string{"amsterdam", "ámsterdam"}},
	{city: "brussels", code: "BRU", aliases: []string{"brussels", "bruselas", "bruxelles"}},
	{city: "zurich", code: "ZRH", aliases: []string{"zurich", "zürich", "zúrich"}},
	{city: "vienna", code: "VIE", aliases: []string{"vienna", "viena", "wien", "vienne"}},
	{city: "lisbon", code: "LIS", aliases: []string{"lisbon", "lisboa", "lisbonne"}},
	{city: "dublin", code: "DUB", aliases: []string{"dublin", "dublín"}},
	{city: "athens", code: "ATH", aliases: []string{"athens", "atenas", "athènes", "atene"}},
	{city: "istanbul", code: "IST", aliases: []string{"istanbul", "estambul"}},
	{city: "moscow", code: "SVO", aliases: []string{"moscow", "moscú", "moscou", "mosca"}},
	{city: "dubai", code: "DXB", aliases: []string{"dubai", "dubái"}},
	{city: "doha", code: "DOH", aliases: []string{"doha"}},
	{city: "delhi", code: "DEL", aliases: []string{"new delhi", "delhi", "nueva delhi"}},
	{city: "mumbai", code: "BOM", aliases: []string{"mumbai", "bombay"}},
	{city: "bangkok", code: "BKK", aliases: []string{"bangkok"}},
	{city: "singapore", code: "SIN", aliases: []string{"singapore", "singapur", "singapour"}},
	{city: "hong kong", code: "HKG", aliases: []string{"hong kong"}},
	{city: "beijing", code: "PEK", aliases: []string{"beijing", "pekin", "pekín", "peking"}},
	{city: "shanghai", code: "PVG", aliases: []string{"shanghai", "shanghái"}},
	{city: "tokyo", code: "HND", aliases: []string{"tokyo", "tokio"}},
	{city: "seoul", code: "ICN", aliases: []string{"seoul", "seúl"}},
	{city: "sydney", code: "SYD", aliases: []string{"sydney", "sídney", "sidney"}},
}
