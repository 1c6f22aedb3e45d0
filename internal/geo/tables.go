package geo

// countryEntry maps an ISO-3166 alpha-2 code to its accepted display names.
// A code may carry several spellings (historical or alternate names); the
// first one is the canonical display name.
type countryEntry struct {
	Code  string
	Names []string
}

// countries is scanned in declaration order so lookups stay deterministic.
var countries = []countryEntry{
	{"AF", []string{"Afghanistan"}},
	{"AL", []string{"Albania"}},
	{"DZ", []string{"Algeria"}},
	{"AS", []string{"American Samoa"}},
	{"AD", []string{"Andorra"}},
	{"AO", []string{"Angola"}},
	{"AI", []string{"Anguilla"}},
	{"AQ", []string{"Antarctica"}},
	{"AG", []string{"Antigua and Barbuda"}},
	{"AR", []string{"Argentina"}},
	{"AM", []string{"Armenia"}},
	{"AW", []string{"Aruba"}},
	{"AU", []string{"Australia"}},
	{"AT", []string{"Austria"}},
	{"AZ", []string{"Azerbaijan"}},
	{"BS", []string{"Bahamas (the)"}},
	{"BH", []string{"Bahrain"}},
	{"BD", []string{"Bangladesh"}},
	{"BB", []string{"Barbados"}},
	{"BY", []string{"Belarus"}},
	{"BE", []string{"Belgium"}},
	{"BZ", []string{"Belize"}},
	{"BJ", []string{"Benin"}},
	{"BM", []string{"Bermuda"}},
	{"BT", []string{"Bhutan"}},
	{"BO", []string{"Bolivia"}},
	{"BQ", []string{"Bonaire, Sint Eustatius and Saba"}},
	{"BA", []string{"Bosnia and Herzegovina"}},
	{"BW", []string{"Botswana"}},
	{"BV", []string{"Bouvet Island"}},
	{"BR", []string{"Brazil"}},
	{"IO", []string{"British Indian Ocean Territory"}},
	{"BN", []string{"Brunei Darussalam"}},
	{"BG", []string{"Bulgaria"}},
	{"BF", []string{"Burkina Faso"}},
	{"BI", []string{"Burundi"}},
	{"CV", []string{"Cabo Verde"}},
	{"KH", []string{"Cambodia"}},
	{"CM", []string{"Cameroon"}},
	{"CA", []string{"Canada"}},
	{"KY", []string{"Cayman Islands"}},
	{"CF", []string{"Central African Republic"}},
	{"TD", []string{"Chad"}},
	{"CL", []string{"Chile"}},
	{"CN", []string{"China"}},
	{"CX", []string{"Christmas Island"}},
	{"CC", []string{"Cocos Islands"}},
	{"CO", []string{"Colombia"}},
	{"KM", []string{"Comoros"}},
	{"CD", []string{"Congo"}},
	{"CG", []string{"Congo"}},
	{"CK", []string{"Cook Islands"}},
	{"CR", []string{"Costa Rica"}},
	{"HR", []string{"Croatia"}},
	{"CU", []string{"Cuba"}},
	{"CW", []string{"Curaçao"}},
	{"CY", []string{"Cyprus"}},
	{"CZ", []string{"Czechia"}},
	{"CI", []string{"Côte d'Ivoire"}},
	{"DK", []string{"Denmark"}},
	{"DJ", []string{"Djibouti"}},
	{"DM", []string{"Dominica"}},
	{"DO", []string{"Dominican Republic"}},
	{"EC", []string{"Ecuador"}},
	{"EG", []string{"Egypt"}},
	{"SV", []string{"El Salvador"}},
	{"GQ", []string{"Equatorial Guinea"}},
	{"ER", []string{"Eritrea"}},
	{"EE", []string{"Estonia"}},
	{"SZ", []string{"Eswatini"}},
	{"ET", []string{"Ethiopia"}},
	{"FK", []string{"Falkland Islands"}},
	{"FO", []string{"Faroe Islands"}},
	{"FJ", []string{"Fiji"}},
	{"FI", []string{"Finland"}},
	{"FR", []string{"France", "Guadeloupe"}},
	{"GF", []string{"French Guiana"}},
	{"PF", []string{"French Polynesia"}},
	{"TF", []string{"French Southern Territories"}},
	{"GA", []string{"Gabon"}},
	{"GM", []string{"Gambia"}},
	{"GE", []string{"Georgia"}},
	{"DE", []string{"Germany"}},
	{"GH", []string{"Ghana"}},
	{"GI", []string{"Gibraltar"}},
	{"GR", []string{"Greece"}},
	{"GL", []string{"Greenland"}},
	{"GD", []string{"Grenada"}},
	{"GP", []string{"Guadeloupe"}},
	{"GU", []string{"Guam"}},
	{"GT", []string{"Guatemala"}},
	{"GG", []string{"Guernsey"}},
	{"GN", []string{"Guinea"}},
	{"GW", []string{"Guinea-Bissau"}},
	{"GY", []string{"Guyana"}},
	{"HT", []string{"Haiti"}},
	{"HM", []string{"Heard Island and McDonald Islands"}},
	{"VA", []string{"Holy See"}},
	{"HN", []string{"Honduras"}},
	{"HK", []string{"Hong Kong"}},
	{"HU", []string{"Hungary"}},
	{"IS", []string{"Iceland"}},
	{"IN", []string{"India"}},
	{"ID", []string{"Indonesia"}},
	{"IR", []string{"Iran"}},
	{"IQ", []string{"Iraq"}},
	{"IE", []string{"Ireland"}},
	{"IM", []string{"Isle of Man"}},
	{"IL", []string{"Israel"}},
	{"IT", []string{"Italy"}},
	{"JM", []string{"Jamaica"}},
	{"JP", []string{"Japan"}},
	{"JE", []string{"Jersey"}},
	{"JO", []string{"Jordan"}},
	{"KZ", []string{"Kazakhstan"}},
	{"KE", []string{"Kenya"}},
	{"KI", []string{"Kiribati"}},
	{"KP", []string{"Korea"}},
	{"KR", []string{"South Korea"}},
	{"KW", []string{"Kuwait"}},
	{"KG", []string{"Kyrgyzstan"}},
	{"LA", []string{"Lao People's Democratic Republic"}},
	{"LV", []string{"Latvia"}},
	{"LB", []string{"Lebanon"}},
	{"LS", []string{"Lesotho"}},
	{"LR", []string{"Liberia"}},
	{"LY", []string{"Libya"}},
	{"LI", []string{"Liechtenstein"}},
	{"LT", []string{"Lithuania"}},
	{"LU", []string{"Luxembourg"}},
	{"MO", []string{"Macao"}},
	{"MG", []string{"Madagascar"}},
	{"MW", []string{"Malawi"}},
	{"MY", []string{"Malaysia"}},
	{"MV", []string{"Maldives"}},
	{"ML", []string{"Mali"}},
	{"MT", []string{"Malta"}},
	{"MH", []string{"Marshall Islands"}},
	{"MQ", []string{"Martinique"}},
	{"MR", []string{"Mauritania"}},
	{"MU", []string{"Mauritius"}},
	{"YT", []string{"Mayotte"}},
	{"MX", []string{"Mexico"}},
	{"FM", []string{"Micronesia"}},
	{"MD", []string{"Moldova"}},
	{"MC", []string{"Monaco"}},
	{"MN", []string{"Mongolia"}},
	{"ME", []string{"Montenegro"}},
	{"MS", []string{"Montserrat"}},
	{"MA", []string{"Morocco"}},
	{"MZ", []string{"Mozambique"}},
	{"MM", []string{"Myanmar"}},
	{"NA", []string{"Namibia"}},
	{"NR", []string{"Nauru"}},
	{"NP", []string{"Nepal"}},
	{"NL", []string{"Netherlands"}},
	{"NC", []string{"New Caledonia"}},
	{"NZ", []string{"New Zealand"}},
	{"NI", []string{"Nicaragua"}},
	{"NE", []string{"Niger"}},
	{"NG", []string{"Nigeria"}},
	{"NU", []string{"Niue"}},
	{"NF", []string{"Norfolk Island"}},
	{"MP", []string{"Northern Mariana Islands"}},
	{"NO", []string{"Norway"}},
	{"OM", []string{"Oman"}},
	{"PK", []string{"Pakistan"}},
	{"PW", []string{"Palau"}},
	{"PS", []string{"Palestine"}},
	{"PA", []string{"Panama"}},
	{"PG", []string{"Papua New Guinea"}},
	{"PY", []string{"Paraguay"}},
	{"PE", []string{"Peru"}},
	{"PH", []string{"Philippines"}},
	{"PN", []string{"Pitcairn"}},
	{"PL", []string{"Poland"}},
	{"PT", []string{"Portugal", "Madeira"}},
	{"PR", []string{"Puerto Rico"}},
	{"QA", []string{"Qatar"}},
	{"MK", []string{"North Macedonia"}},
	{"RO", []string{"Romania"}},
	{"RU", []string{"Russia"}},
	{"RW", []string{"Rwanda"}},
	{"RE", []string{"Réunion"}},
	{"BL", []string{"Saint Barthélemy"}},
	{"SH", []string{"Saint Helena, Ascension and Tristan da Cunha"}},
	{"KN", []string{"Saint Kitts and Nevis"}},
	{"LC", []string{"Saint Lucia"}},
	{"MF", []string{"Saint Martin"}},
	{"PM", []string{"Saint Pierre and Miquelon"}},
	{"VC", []string{"Saint Vincent and the Grenadines"}},
	{"WS", []string{"Samoa"}},
	{"SM", []string{"San Marino"}},
	{"ST", []string{"Sao Tome and Principe"}},
	{"SA", []string{"Saudi Arabia"}},
	{"SN", []string{"Senegal"}},
	{"RS", []string{"Serbia"}},
	{"SC", []string{"Seychelles"}},
	{"SL", []string{"Sierra Leone"}},
	{"SG", []string{"Singapore"}},
	{"SX", []string{"Sint Maarten"}},
	{"SK", []string{"Slovakia"}},
	{"SI", []string{"Slovenia"}},
	{"SB", []string{"Solomon Islands"}},
	{"SO", []string{"Somalia"}},
	{"ZA", []string{"South Africa"}},
	{"GS", []string{"South Georgia and the South Sandwich Islands"}},
	{"SS", []string{"South Sudan"}},
	{"ES", []string{"Spain"}},
	{"LK", []string{"Sri Lanka"}},
	{"SD", []string{"Sudan"}},
	{"SR", []string{"Suriname"}},
	{"SJ", []string{"Svalbard and Jan Mayen"}},
	{"SE", []string{"Sweden"}},
	{"CH", []string{"Switzerland"}},
	{"SY", []string{"Syrian Arab Republic"}},
	{"TW", []string{"Taiwan"}},
	{"TJ", []string{"Tajikistan"}},
	{"TZ", []string{"Tanzania"}},
	{"TH", []string{"Thailand"}},
	{"TL", []string{"Timor-Leste"}},
	{"TG", []string{"Togo"}},
	{"TK", []string{"Tokelau"}},
	{"TO", []string{"Tonga"}},
	{"TT", []string{"Trinidad and Tobago"}},
	{"TN", []string{"Tunisia"}},
	{"TR", []string{"Turkey", "Türkiye"}},
	{"TM", []string{"Turkmenistan"}},
	{"TC", []string{"Turks and Caicos Islands"}},
	{"TV", []string{"Tuvalu"}},
	{"UG", []string{"Uganda"}},
	{"UA", []string{"Ukraine"}},
	{"AE", []string{"United Arab Emirates"}},
	{"GB", []string{"United Kingdom"}},
	{"US", []string{"United States", "United States Minor Outlying Islands"}},
	{"UY", []string{"Uruguay"}},
	{"UZ", []string{"Uzbekistan"}},
	{"VU", []string{"Vanuatu"}},
	{"VE", []string{"Venezuela"}},
	{"VN", []string{"Viet Nam"}},
	{"VG", []string{"Virgin Islands", "British Virgin Islands"}},
	{"VI", []string{"Virgin Islands", "U.S. Virgin Islands"}},
	{"WF", []string{"Wallis and Futuna"}},
	{"EH", []string{"Western Sahara"}},
	{"YE", []string{"Yemen"}},
	{"ZM", []string{"Zambia"}},
	{"ZW", []string{"Zimbabwe"}},
	{"AX", []string{"Åland Islands"}},
}

// countryByCode is the code index over countries, built once at start.
var countryByCode = func() map[string][]string {
	m := make(map[string][]string, len(countries))
	for _, c := range countries {
		if _, ok := m[c.Code]; !ok {
			m[c.Code] = c.Names
		}
	}
	return m
}()

// cityEntry associates a well-known city with its country code.
type cityEntry struct {
	City string
	Code string
}

// cities is a curated list matched in declaration order. Station subtitles
// very often carry only a city name, so the common radio markets come first.
var cities = []cityEntry{
	{"Tokyo", "JP"},
	{"Osaka", "JP"},
	{"Kyoto", "JP"},
	{"Sapporo", "JP"},
	{"Nagoya", "JP"},
	{"Fukuoka", "JP"},
	{"Jakarta", "ID"},
	{"Bandung", "ID"},
	{"Surabaya", "ID"},
	{"Yogyakarta", "ID"},
	{"Medan", "ID"},
	{"Bali", "ID"},
	{"London", "GB"},
	{"Manchester", "GB"},
	{"Liverpool", "GB"},
	{"Glasgow", "GB"},
	{"Edinburgh", "GB"},
	{"New York", "US"},
	{"Los Angeles", "US"},
	{"Chicago", "US"},
	{"Houston", "US"},
	{"Miami", "US"},
	{"Seattle", "US"},
	{"Boston", "US"},
	{"Detroit", "US"},
	{"Nashville", "US"},
	{"Paris", "FR"},
	{"Marseille", "FR"},
	{"Lyon", "FR"},
	{"Toulouse", "FR"},
	{"Berlin", "DE"},
	{"Hamburg", "DE"},
	{"Munich", "DE"},
	{"Cologne", "DE"},
	{"Frankfurt", "DE"},
	{"Madrid", "ES"},
	{"Barcelona", "ES"},
	{"Valencia", "ES"},
	{"Seville", "ES"},
	{"Rome", "IT"},
	{"Milan", "IT"},
	{"Naples", "IT"},
	{"Turin", "IT"},
	{"Sydney", "AU"},
	{"Melbourne", "AU"},
	{"Brisbane", "AU"},
	{"Perth", "AU"},
	{"Toronto", "CA"},
	{"Vancouver", "CA"},
	{"Montreal", "CA"},
	{"Ottawa", "CA"},
	{"Moscow", "RU"},
	{"Saint Petersburg", "RU"},
	{"Beijing", "CN"},
	{"Shanghai", "CN"},
	{"Guangzhou", "CN"},
	{"Mumbai", "IN"},
	{"Delhi", "IN"},
	{"Bangalore", "IN"},
	{"Kolkata", "IN"},
	{"Chennai", "IN"},
	{"Mexico City", "MX"},
	{"Guadalajara", "MX"},
	{"Monterrey", "MX"},
	{"Santiago", "CL"},
	{"Valparaiso", "CL"},
	{"Sao Paulo", "BR"},
	{"Rio de Janeiro", "BR"},
	{"Brasilia", "BR"},
	{"Buenos Aires", "AR"},
	{"Cordoba", "AR"},
	{"Lima", "PE"},
	{"Bogota", "CO"},
	{"Medellin", "CO"},
	{"Caracas", "VE"},
	{"Amsterdam", "NL"},
	{"Rotterdam", "NL"},
	{"Brussels", "BE"},
	{"Antwerp", "BE"},
	{"Vienna", "AT"},
	{"Zurich", "CH"},
	{"Geneva", "CH"},
	{"Stockholm", "SE"},
	{"Gothenburg", "SE"},
	{"Oslo", "NO"},
	{"Copenhagen", "DK"},
	{"Helsinki", "FI"},
	{"Warsaw", "PL"},
	{"Krakow", "PL"},
	{"Prague", "CZ"},
	{"Budapest", "HU"},
	{"Athens", "GR"},
	{"Lisbon", "PT"},
	{"Porto", "PT"},
	{"Dublin", "IE"},
	{"Istanbul", "TR"},
	{"Ankara", "TR"},
	{"Izmir", "TR"},
	{"Seoul", "KR"},
	{"Busan", "KR"},
	{"Bangkok", "TH"},
	{"Hanoi", "VN"},
	{"Ho Chi Minh", "VN"},
	{"Manila", "PH"},
	{"Cebu", "PH"},
	{"Kuala Lumpur", "MY"},
	{"Taipei", "TW"},
	{"Cairo", "EG"},
	{"Alexandria", "EG"},
	{"Lagos", "NG"},
	{"Abuja", "NG"},
	{"Nairobi", "KE"},
	{"Johannesburg", "ZA"},
	{"Cape Town", "ZA"},
	{"Durban", "ZA"},
	{"Casablanca", "MA"},
	{"Dubai", "AE"},
	{"Abu Dhabi", "AE"},
	{"Riyadh", "SA"},
	{"Jeddah", "SA"},
	{"Tel Aviv", "IL"},
	{"Jerusalem", "IL"},
	{"Auckland", "NZ"},
	{"Wellington", "NZ"},
	{"Kyiv", "UA"},
	{"Kiev", "UA"},
	{"Bucharest", "RO"},
	{"Sofia", "BG"},
	{"Belgrade", "RS"},
	{"Zagreb", "HR"},
	{"Sanaa", "YE"},
	{"Aden", "YE"},
}

// altEntry is an alternate country spelling or abbreviation.
type altEntry struct {
	Name string
	Code string
}

// altNames holds spellings the main table does not carry: abbreviations,
// native names, and common colloquial forms. Matched in declaration order.
var altNames = []altEntry{
	{"United States of America", "US"},
	{"U.S.A.", "US"},
	{"U.S.", "US"},
	{"USA", "US"},
	{"America", "US"},
	{"Great Britain", "GB"},
	{"Britain", "GB"},
	{"England", "GB"},
	{"Scotland", "GB"},
	{"Wales", "GB"},
	{"U.K.", "GB"},
	{"UK", "GB"},
	{"Deutschland", "DE"},
	{"Espana", "ES"},
	{"España", "ES"},
	{"Italia", "IT"},
	{"Brasil", "BR"},
	{"Nederland", "NL"},
	{"Holland", "NL"},
	{"Polska", "PL"},
	{"Sverige", "SE"},
	{"Norge", "NO"},
	{"Danmark", "DK"},
	{"Suomi", "FI"},
	{"Nippon", "JP"},
	{"Nihon", "JP"},
	{"Hellas", "GR"},
	{"Schweiz", "CH"},
	{"Suisse", "CH"},
	{"Osterreich", "AT"},
	{"Österreich", "AT"},
	{"Vietnam", "VN"},
	{"Czech Republic", "CZ"},
	{"Republic of Korea", "KR"},
	{"North Korea", "KP"},
	{"United Arab Emirates", "AE"},
	{"UAE", "AE"},
	{"Emirates", "AE"},
	{"Ivory Coast", "CI"},
	{"Burma", "MM"},
	{"Persia", "IR"},
	{"Saudi", "SA"},
	{"Russian Federation", "RU"},
}

// displayNames maps common codes to a canonical English name, used when a
// resolution yields a code but the caller has no usable label. Closed list;
// codes outside it keep whatever label the resolver produced.
var displayNames = map[string]string{
	"US": "United States",
	"GB": "United Kingdom",
	"JP": "Japan",
	"ID": "Indonesia",
	"AU": "Australia",
	"CA": "Canada",
	"FR": "France",
	"DE": "Germany",
	"IT": "Italy",
	"ES": "Spain",
	"BR": "Brazil",
	"RU": "Russia",
	"CN": "China",
	"IN": "India",
	"MX": "Mexico",
	"CL": "Chile",
	"YE": "Yemen",
}
