package nlp

import "strings"

type suffixRule struct {
	suffix string
	tag    Tag
	minLen int
}

// Checked in order; the first matching suffix wins.
var suffixRules = []suffixRule{
	{suffix: "ly", tag: TagAdverb, minLen: 4},
	{suffix: "ing", tag: TagVerb, minLen: 5},
	{suffix: "ed", tag: TagVerb, minLen: 4},
	{suffix: "tion", tag: TagNoun, minLen: 5},
	{suffix: "sion", tag: TagNoun, minLen: 5},
	{suffix: "ment", tag: TagNoun, minLen: 5},
	{suffix: "ness", tag: TagNoun, minLen: 5},
	{suffix: "ity", tag: TagNoun, minLen: 4},
	{suffix: "ance", tag: TagNoun, minLen: 5},
	{suffix: "ence", tag: TagNoun, minLen: 5},
	{suffix: "ship", tag: TagNoun, minLen: 5},
	{suffix: "ware", tag: TagNoun, minLen: 5},
	{suffix: "ous", tag: TagAdjective, minLen: 5},
	{suffix: "ful", tag: TagAdjective, minLen: 5},
	{suffix: "ive", tag: TagAdjective, minLen: 5},
	{suffix: "able", tag: TagAdjective, minLen: 5},
	{suffix: "ible", tag: TagAdjective, minLen: 5},
	{suffix: "ical", tag: TagAdjective, minLen: 5},
	{suffix: "less", tag: TagAdjective, minLen: 5},
	{suffix: "er", tag: TagNoun, minLen: 4},
	{suffix: "or", tag: TagNoun, minLen: 4},
	{suffix: "ist", tag: TagNoun, minLen: 4},
	{suffix: "ism", tag: TagNoun, minLen: 4},
	{suffix: "age", tag: TagNoun, minLen: 4},
	{suffix: "ure", tag: TagNoun, minLen: 4},
}

func buildLexicon() map[string]Tag {
	lexicon := make(map[string]Tag, 512)

	add := func(tag Tag, words string) {
		for _, word := range strings.Fields(words) {
			lexicon[word] = tag
		}
	}

	add(TagDeterminer, `a an the this that these those all any some every each no
		my your our their his her its another either neither both such`)
	add(TagPronoun, `i me you we us they them he him she it what who whom whose which
		something anything nothing everything someone anyone everyone myself yourself
		ourselves themselves mine yours ours theirs`)
	add(TagAdposition, `of for in on at by with from to about into onto over under between
		after before during without within through across against among per via near
		like than`)
	add(TagConjunction, `and or but nor yet so`)
	add(TagParticle, `not 's 't 'll 're 've 'd 'm`)
	add(TagAuxiliary, `is are was were be been being am do does did have has had can could
		will would shall should may might must`)
	add(TagVerb, `show list give get find search tell want need know look looking see make
		let help display provide send add create delete remove update modify change check
		reset notify buy sell order place fetch bring supply supplies provides provide
		produce produces cost costs sort filter count locate`)
	add(TagAdverb, `how when where why here there now currently also just only very too
		more most less least again please then still already ever never always`)
	add(TagAdjective, `many much few several new old available unavailable low high total
		other same different cheap cheapest expensive best top first last next current
		regular retail additional specific registered active inactive`)
	add(TagNumber, `zero one two three four five six seven eight nine ten eleven twelve
		twenty hundred thousand`)
	add(TagNoun, `product products item items category categories brand brands user users
		supplier suppliers vendor vendors price prices stock inventory email phone address
		number contact details detail info information database table tables field fields
		schema order orders permission permissions role roles account accounts catalog
		merchandise name names id quantity level levels count sale discount laptop
		laptops monitor keyboard mouse camera shoe shoes shirt book books watch tablet
		headphones charger cable bag chair desk lamp bottle`)

	return lexicon
}
