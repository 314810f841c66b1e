// Package kana provides the small kana-handling helpers the decoder needs:
// validating that input is plain hiragana, and converting hiragana to
// katakana for alternative-form display. The hira2kata table is ported
// from the original implementation's KanaConverter (libakaza/src/kana.rs);
// everything else here is new.
package kana

// hira2kata maps each hiragana/punctuation rune the original converter
// handled to its katakana (or identity) counterpart.
var hira2kata = map[rune]rune{
	'ぁ': 'ァ', 'あ': 'ア', 'ぃ': 'ィ', 'い': 'イ', 'ぅ': 'ゥ', 'う': 'ウ',
	'ぇ': 'ェ', 'え': 'エ', 'ぉ': 'ォ', 'お': 'オ', 'か': 'カ', 'が': 'ガ',
	'き': 'キ', 'ぎ': 'ギ', 'く': 'ク', 'ぐ': 'グ', 'け': 'ケ', 'げ': 'ゲ',
	'こ': 'コ', 'ご': 'ゴ', 'さ': 'サ', 'ざ': 'ザ', 'し': 'シ', 'じ': 'ジ',
	'す': 'ス', 'ず': 'ズ', 'せ': 'セ', 'ぜ': 'ゼ', 'そ': 'ソ', 'ぞ': 'ゾ',
	'た': 'タ', 'だ': 'ダ', 'ち': 'チ', 'ぢ': 'ヂ', 'っ': 'ッ', 'つ': 'ツ',
	'づ': 'ヅ', 'て': 'テ', 'で': 'デ', 'と': 'ト', 'ど': 'ド', 'な': 'ナ',
	'に': 'ニ', 'ぬ': 'ヌ', 'ね': 'ネ', 'の': 'ノ', 'は': 'ハ', 'ば': 'バ',
	'ぱ': 'パ', 'ひ': 'ヒ', 'び': 'ビ', 'ぴ': 'ピ', 'ふ': 'フ', 'ぶ': 'ブ',
	'ぷ': 'プ', 'へ': 'ヘ', 'べ': 'ベ', 'ぺ': 'ペ', 'ほ': 'ホ', 'ぼ': 'ボ',
	'ぽ': 'ポ', 'ま': 'マ', 'み': 'ミ', 'む': 'ム', 'め': 'メ', 'も': 'モ',
	'ゃ': 'ャ', 'や': 'ヤ', 'ゅ': 'ュ', 'ゆ': 'ユ', 'ょ': 'ョ', 'よ': 'ヨ',
	'ら': 'ラ', 'り': 'リ', 'る': 'ル', 'れ': 'レ', 'ろ': 'ロ', 'わ': 'ワ',
	'を': 'ヲ', 'ん': 'ン', 'ー': 'ー', 'ゎ': 'ヮ', 'ゐ': 'ヰ', 'ゑ': 'ヱ',
	'ゕ': 'ヵ', 'ゖ': 'ヶ', 'ゔ': 'ヴ', 'ゝ': 'ヽ', 'ゞ': 'ヾ',
	'・': '・', '「': '「', '」': '」', '。': '。', '、': '、',
}

// HiraToKata converts hiragana runes in src to their katakana equivalents,
// leaving unrecognised runes untouched. It is the display-alternative
// collaborator spec.md names as a trivial sibling of the core decoder.
func HiraToKata(src string) string {
	out := make([]rune, 0, len(src))
	for _, r := range src {
		if k, ok := hira2kata[r]; ok {
			out = append(out, k)
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

// IsHiragana reports whether r is a plain hiragana character (U+3040-U+309F).
func IsHiragana(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

// IsValidYomi reports whether s is entirely composed of hiragana runes.
// Empty input is valid (it converts to the empty string).
func IsValidYomi(s string) bool {
	for _, r := range s {
		if !IsHiragana(r) {
			return false
		}
	}
	return true
}
