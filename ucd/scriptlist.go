package ucd

// Script values, ordered by ISO 15924 code after the three special values.
// Unknown is the zero value.
const (
	Unknown Script = iota // Zzzz
	Common                // Zyyy
	Inherited             // Zinh
	Adlam                 // Adlm
	CaucasianAlbanian     // Aghb
	Ahom                  // Ahom
	Arabic                // Arab
	ImperialAramaic       // Armi
	Armenian              // Armn
	Avestan               // Avst
	Balinese              // Bali
	Bamum                 // Bamu
	BassaVah              // Bass
	Batak                 // Batk
	Bengali               // Beng
	Bhaiksuki             // Bhks
	Bopomofo              // Bopo
	Brahmi                // Brah
	Braille               // Brai
	Buginese              // Bugi
	Buhid                 // Buhd
	Chakma                // Cakm
	CanadianAboriginal    // Cans
	Carian                // Cari
	Cham                  // Cham
	Cherokee              // Cher
	Chorasmian            // Chrs
	Coptic                // Copt
	CyproMinoan           // Cpmn
	Cypriot               // Cprt
	Cyrillic              // Cyrl
	Devanagari            // Deva
	DivesAkuru            // Diak
	Dogra                 // Dogr
	Deseret               // Dsrt
	Duployan              // Dupl
	EgyptianHieroglyphs   // Egyp
	Elbasan               // Elba
	Elymaic               // Elym
	Ethiopic              // Ethi
	Garay                 // Gara
	Georgian              // Geor
	Glagolitic            // Glag
	GunjalaGondi          // Gong
	MasaramGondi          // Gonm
	Gothic                // Goth
	Grantha               // Gran
	Greek                 // Grek
	Gujarati              // Gujr
	GurungKhema           // Gukh
	Gurmukhi              // Guru
	Hangul                // Hang
	Han                   // Hani
	Hanunoo               // Hano
	Hatran                // Hatr
	Hebrew                // Hebr
	Hiragana              // Hira
	AnatolianHieroglyphs  // Hluw
	PahawhHmong           // Hmng
	NyiakengPuachueHmong  // Hmnp
	OldHungarian          // Hung
	OldItalic             // Ital
	Javanese              // Java
	KayahLi               // Kali
	Katakana              // Kana
	Kawi                  // Kawi
	Kharoshthi            // Khar
	Khmer                 // Khmr
	Khojki                // Khoj
	KhitanSmallScript     // Kits
	Kannada               // Knda
	KiratRai              // Krai
	Kaithi                // Kthi
	TaiTham               // Lana
	Lao                   // Laoo
	Latin                 // Latn
	Lepcha                // Lepc
	Limbu                 // Limb
	LinearA               // Lina
	LinearB               // Linb
	Lisu                  // Lisu
	Lycian                // Lyci
	Lydian                // Lydi
	Mahajani              // Mahj
	Makasar               // Maka
	Mandaic               // Mand
	Manichaean            // Mani
	Marchen               // Marc
	Medefaidrin           // Medf
	MendeKikakui          // Mend
	MeroiticCursive       // Merc
	MeroiticHieroglyphs   // Mero
	Malayalam             // Mlym
	Modi                  // Modi
	Mongolian             // Mong
	Mro                   // Mroo
	MeeteiMayek           // Mtei
	Multani               // Mult
	Myanmar               // Mymr
	NagMundari            // Nagm
	Nandinagari           // Nand
	OldNorthArabian       // Narb
	Nabataean             // Nbat
	Newa                  // Newa
	Nko                   // Nkoo
	Nushu                 // Nshu
	Ogham                 // Ogam
	OlChiki               // Olck
	OlOnal                // Onao
	OldTurkic             // Orkh
	Oriya                 // Orya
	Osage                 // Osge
	Osmanya               // Osma
	OldUyghur             // Ougr
	Palmyrene             // Palm
	PauCinHau             // Pauc
	OldPermic             // Perm
	PhagsPa               // Phag
	InscriptionalPahlavi  // Phli
	PsalterPahlavi        // Phlp
	Phoenician            // Phnx
	Miao                  // Plrd
	InscriptionalParthian // Prti
	Rejang                // Rjng
	HanifiRohingya        // Rohg
	Runic                 // Runr
	Samaritan             // Samr
	OldSouthArabian       // Sarb
	Saurashtra            // Saur
	SignWriting           // Sgnw
	Shavian               // Shaw
	Sharada               // Shrd
	Siddham               // Sidd
	Khudawadi             // Sind
	Sinhala               // Sinh
	Sogdian               // Sogd
	OldSogdian            // Sogo
	SoraSompeng           // Sora
	Soyombo               // Soyo
	Sundanese             // Sund
	Sunuwar               // Sunu
	SylotiNagri           // Sylo
	Syriac                // Syrc
	Tagbanwa              // Tagb
	Takri                 // Takr
	TaiLe                 // Tale
	NewTaiLue             // Talu
	Tamil                 // Taml
	Tangut                // Tang
	TaiViet               // Tavt
	Telugu                // Telu
	Tifinagh              // Tfng
	Tagalog               // Tglg
	Thaana                // Thaa
	Thai                  // Thai
	Tibetan               // Tibt
	Tirhuta               // Tirh
	Tangsa                // Tnsa
	Todhri                // Todr
	Toto                  // Toto
	TuluTigalari          // Tutg
	Ugaritic              // Ugar
	Vai                   // Vaii
	Vithkuqi              // Vith
	WarangCiti            // Wara
	Wancho                // Wcho
	OldPersian            // Xpeo
	Cuneiform             // Xsux
	Yezidi                // Yezi
	Yi                    // Yiii
	ZanabazarSquare       // Zanb

	scriptCount
)

var scriptInfo = [scriptCount]struct {
	iso  string
	name string
}{
	Unknown:               {"Zzzz", "Unknown"},
	Common:                {"Zyyy", "Common"},
	Inherited:             {"Zinh", "Inherited"},
	Adlam:                 {"Adlm", "Adlam"},
	CaucasianAlbanian:     {"Aghb", "Caucasian_Albanian"},
	Ahom:                  {"Ahom", "Ahom"},
	Arabic:                {"Arab", "Arabic"},
	ImperialAramaic:       {"Armi", "Imperial_Aramaic"},
	Armenian:              {"Armn", "Armenian"},
	Avestan:               {"Avst", "Avestan"},
	Balinese:              {"Bali", "Balinese"},
	Bamum:                 {"Bamu", "Bamum"},
	BassaVah:              {"Bass", "Bassa_Vah"},
	Batak:                 {"Batk", "Batak"},
	Bengali:               {"Beng", "Bengali"},
	Bhaiksuki:             {"Bhks", "Bhaiksuki"},
	Bopomofo:              {"Bopo", "Bopomofo"},
	Brahmi:                {"Brah", "Brahmi"},
	Braille:               {"Brai", "Braille"},
	Buginese:              {"Bugi", "Buginese"},
	Buhid:                 {"Buhd", "Buhid"},
	Chakma:                {"Cakm", "Chakma"},
	CanadianAboriginal:    {"Cans", "Canadian_Aboriginal"},
	Carian:                {"Cari", "Carian"},
	Cham:                  {"Cham", "Cham"},
	Cherokee:              {"Cher", "Cherokee"},
	Chorasmian:            {"Chrs", "Chorasmian"},
	Coptic:                {"Copt", "Coptic"},
	CyproMinoan:           {"Cpmn", "Cypro_Minoan"},
	Cypriot:               {"Cprt", "Cypriot"},
	Cyrillic:              {"Cyrl", "Cyrillic"},
	Devanagari:            {"Deva", "Devanagari"},
	DivesAkuru:            {"Diak", "Dives_Akuru"},
	Dogra:                 {"Dogr", "Dogra"},
	Deseret:               {"Dsrt", "Deseret"},
	Duployan:              {"Dupl", "Duployan"},
	EgyptianHieroglyphs:   {"Egyp", "Egyptian_Hieroglyphs"},
	Elbasan:               {"Elba", "Elbasan"},
	Elymaic:               {"Elym", "Elymaic"},
	Ethiopic:              {"Ethi", "Ethiopic"},
	Garay:                 {"Gara", "Garay"},
	Georgian:              {"Geor", "Georgian"},
	Glagolitic:            {"Glag", "Glagolitic"},
	GunjalaGondi:          {"Gong", "Gunjala_Gondi"},
	MasaramGondi:          {"Gonm", "Masaram_Gondi"},
	Gothic:                {"Goth", "Gothic"},
	Grantha:               {"Gran", "Grantha"},
	Greek:                 {"Grek", "Greek"},
	Gujarati:              {"Gujr", "Gujarati"},
	GurungKhema:           {"Gukh", "Gurung_Khema"},
	Gurmukhi:              {"Guru", "Gurmukhi"},
	Hangul:                {"Hang", "Hangul"},
	Han:                   {"Hani", "Han"},
	Hanunoo:               {"Hano", "Hanunoo"},
	Hatran:                {"Hatr", "Hatran"},
	Hebrew:                {"Hebr", "Hebrew"},
	Hiragana:              {"Hira", "Hiragana"},
	AnatolianHieroglyphs:  {"Hluw", "Anatolian_Hieroglyphs"},
	PahawhHmong:           {"Hmng", "Pahawh_Hmong"},
	NyiakengPuachueHmong:  {"Hmnp", "Nyiakeng_Puachue_Hmong"},
	OldHungarian:          {"Hung", "Old_Hungarian"},
	OldItalic:             {"Ital", "Old_Italic"},
	Javanese:              {"Java", "Javanese"},
	KayahLi:               {"Kali", "Kayah_Li"},
	Katakana:              {"Kana", "Katakana"},
	Kawi:                  {"Kawi", "Kawi"},
	Kharoshthi:            {"Khar", "Kharoshthi"},
	Khmer:                 {"Khmr", "Khmer"},
	Khojki:                {"Khoj", "Khojki"},
	KhitanSmallScript:     {"Kits", "Khitan_Small_Script"},
	Kannada:               {"Knda", "Kannada"},
	KiratRai:              {"Krai", "Kirat_Rai"},
	Kaithi:                {"Kthi", "Kaithi"},
	TaiTham:               {"Lana", "Tai_Tham"},
	Lao:                   {"Laoo", "Lao"},
	Latin:                 {"Latn", "Latin"},
	Lepcha:                {"Lepc", "Lepcha"},
	Limbu:                 {"Limb", "Limbu"},
	LinearA:               {"Lina", "Linear_A"},
	LinearB:               {"Linb", "Linear_B"},
	Lisu:                  {"Lisu", "Lisu"},
	Lycian:                {"Lyci", "Lycian"},
	Lydian:                {"Lydi", "Lydian"},
	Mahajani:              {"Mahj", "Mahajani"},
	Makasar:               {"Maka", "Makasar"},
	Mandaic:               {"Mand", "Mandaic"},
	Manichaean:            {"Mani", "Manichaean"},
	Marchen:               {"Marc", "Marchen"},
	Medefaidrin:           {"Medf", "Medefaidrin"},
	MendeKikakui:          {"Mend", "Mende_Kikakui"},
	MeroiticCursive:       {"Merc", "Meroitic_Cursive"},
	MeroiticHieroglyphs:   {"Mero", "Meroitic_Hieroglyphs"},
	Malayalam:             {"Mlym", "Malayalam"},
	Modi:                  {"Modi", "Modi"},
	Mongolian:             {"Mong", "Mongolian"},
	Mro:                   {"Mroo", "Mro"},
	MeeteiMayek:           {"Mtei", "Meetei_Mayek"},
	Multani:               {"Mult", "Multani"},
	Myanmar:               {"Mymr", "Myanmar"},
	NagMundari:            {"Nagm", "Nag_Mundari"},
	Nandinagari:           {"Nand", "Nandinagari"},
	OldNorthArabian:       {"Narb", "Old_North_Arabian"},
	Nabataean:             {"Nbat", "Nabataean"},
	Newa:                  {"Newa", "Newa"},
	Nko:                   {"Nkoo", "Nko"},
	Nushu:                 {"Nshu", "Nushu"},
	Ogham:                 {"Ogam", "Ogham"},
	OlChiki:               {"Olck", "Ol_Chiki"},
	OlOnal:                {"Onao", "Ol_Onal"},
	OldTurkic:             {"Orkh", "Old_Turkic"},
	Oriya:                 {"Orya", "Oriya"},
	Osage:                 {"Osge", "Osage"},
	Osmanya:               {"Osma", "Osmanya"},
	OldUyghur:             {"Ougr", "Old_Uyghur"},
	Palmyrene:             {"Palm", "Palmyrene"},
	PauCinHau:             {"Pauc", "Pau_Cin_Hau"},
	OldPermic:             {"Perm", "Old_Permic"},
	PhagsPa:               {"Phag", "Phags_Pa"},
	InscriptionalPahlavi:  {"Phli", "Inscriptional_Pahlavi"},
	PsalterPahlavi:        {"Phlp", "Psalter_Pahlavi"},
	Phoenician:            {"Phnx", "Phoenician"},
	Miao:                  {"Plrd", "Miao"},
	InscriptionalParthian: {"Prti", "Inscriptional_Parthian"},
	Rejang:                {"Rjng", "Rejang"},
	HanifiRohingya:        {"Rohg", "Hanifi_Rohingya"},
	Runic:                 {"Runr", "Runic"},
	Samaritan:             {"Samr", "Samaritan"},
	OldSouthArabian:       {"Sarb", "Old_South_Arabian"},
	Saurashtra:            {"Saur", "Saurashtra"},
	SignWriting:           {"Sgnw", "SignWriting"},
	Shavian:               {"Shaw", "Shavian"},
	Sharada:               {"Shrd", "Sharada"},
	Siddham:               {"Sidd", "Siddham"},
	Khudawadi:             {"Sind", "Khudawadi"},
	Sinhala:               {"Sinh", "Sinhala"},
	Sogdian:               {"Sogd", "Sogdian"},
	OldSogdian:            {"Sogo", "Old_Sogdian"},
	SoraSompeng:           {"Sora", "Sora_Sompeng"},
	Soyombo:               {"Soyo", "Soyombo"},
	Sundanese:             {"Sund", "Sundanese"},
	Sunuwar:               {"Sunu", "Sunuwar"},
	SylotiNagri:           {"Sylo", "Syloti_Nagri"},
	Syriac:                {"Syrc", "Syriac"},
	Tagbanwa:              {"Tagb", "Tagbanwa"},
	Takri:                 {"Takr", "Takri"},
	TaiLe:                 {"Tale", "Tai_Le"},
	NewTaiLue:             {"Talu", "New_Tai_Lue"},
	Tamil:                 {"Taml", "Tamil"},
	Tangut:                {"Tang", "Tangut"},
	TaiViet:               {"Tavt", "Tai_Viet"},
	Telugu:                {"Telu", "Telugu"},
	Tifinagh:              {"Tfng", "Tifinagh"},
	Tagalog:               {"Tglg", "Tagalog"},
	Thaana:                {"Thaa", "Thaana"},
	Thai:                  {"Thai", "Thai"},
	Tibetan:               {"Tibt", "Tibetan"},
	Tirhuta:               {"Tirh", "Tirhuta"},
	Tangsa:                {"Tnsa", "Tangsa"},
	Todhri:                {"Todr", "Todhri"},
	Toto:                  {"Toto", "Toto"},
	TuluTigalari:          {"Tutg", "Tulu_Tigalari"},
	Ugaritic:              {"Ugar", "Ugaritic"},
	Vai:                   {"Vaii", "Vai"},
	Vithkuqi:              {"Vith", "Vithkuqi"},
	WarangCiti:            {"Wara", "Warang_Citi"},
	Wancho:                {"Wcho", "Wancho"},
	OldPersian:            {"Xpeo", "Old_Persian"},
	Cuneiform:             {"Xsux", "Cuneiform"},
	Yezidi:                {"Yezi", "Yezidi"},
	Yi:                    {"Yiii", "Yi"},
	ZanabazarSquare:       {"Zanb", "Zanabazar_Square"},
}
