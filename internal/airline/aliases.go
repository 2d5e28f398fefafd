package airline

// aliasEntry maps one canonical carrier to its IATA codes and the name
// variants users say or type, across the languages the assistant speaks.
// The table is read-only and scanned linearly; it is small enough that an
// inverted index would not pay for itself.
type aliasEntry struct {
	key     string
	codes   []string
	aliases []string
}

var aliasTable = []aliasEntry{
	{key: "american", codes: []string{"AA"}, aliases: []string{"american airlines", "american"}},
	{key: "delta", codes: []string{"DL"}, aliases: []string{"delta air lines", "delta"}},
	{key: "united", codes: []string{"UA"}, aliases: []string{"united airlines", "united"}},
	{key: "iberia", codes: []string{"IB"}, aliases: []string{"iberia", "iberia airlines", "iberia líneas aéreas"}},
	{key: "british", codes: []string{"BA"}, aliases: []string{"british airways", "british"}},
	{key: "airfrance", codes: []string{"AF"}, aliases: []string{"air france", "airfrance"}},
	{key: "klm", codes: []string{"KL"}, aliases: []string{"klm", "klm royal dutch airlines"}},
	{key: "lufthansa", codes: []string{"LH"}, aliases: []string{"lufthansa", "deutsche lufthansa"}},
	{key: "swiss", codes: []string{"LX"}, aliases: []string{"swiss", "swiss international air lines"}},
	{key: "vueling", codes: []string{"VY"}, aliases: []string{"vueling"}},
	{key: "ryanair", codes: []string{"FR"}, aliases: []string{"ryanair"}},
	{key: "easyjet", codes: []string{"U2"}, aliases: []string{"easyjet", "easy jet"}},
	{key: "emirates", codes: []string{"EK"}, aliases: []string{"emirates", "fly emirates"}},
	{key: "qatar", codes: []string{"QR"}, aliases: []string{"qatar airways", "qatar"}},
	{key: "etihad", codes: []string{"EY"}, aliases: []string{"etihad airways", "etihad"}},
	{key: "turkish", codes: []string{"TK"}, aliases: []string{"turkish airlines", "turkish", "türk hava yolları"}},
	{key: "aeromexico", codes: []string{"AM"}, aliases: []string{"aeromexico", "aeroméxico"}},
	{key: "avianca", codes: []string{"AV"}, aliases: []string{"avianca"}},
	{key: "latam", codes: []string{"LA"}, aliases: []string{"latam", "latam airlines", "lan"}},
	{key: "aireuropa", codes: []string{"UX"}, aliases: []string{"air europa"}},
	{key: "tap", codes: []string{"TP"}, aliases: []string{"tap air portugal", "tap portugal", "tap"}},
	{key: "alitalia", codes: []string{"AZ"}, aliases: []string{"ita airways", "alitalia"}},
	{key: "aerolineas", codes: []string{"AR"}, aliases: []string{"aerolíneas argentinas", "aerolineas argentinas"}},
	{key: "ana", codes: []string{"NH"}, aliases: []string{"all nippon airways", "ana"}},
	{key: "jal", codes: []string{"JL"}, aliases: []string{"japan airlines", "jal"}},
	{key: "singapore", codes: []string{"SQ"}, aliases: []string{"singapore airlines"}},
	{key: "cathay", codes: []string{"CX"}, aliases: []string{"cathay pacific", "cathay"}},
	{key: "aircanada", codes: []string{"AC"}, aliases: []string{"air canada"}},
	{key: "jetblue", codes: []string{"B6"}, aliases: []string{"jetblue", "jet blue"}},
	{key: "southwest", codes: []string{"WN"}, aliases: []string{"southwest airlines", "southwest"}},
}
