package basics

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// firstWord returns the first space-separated word of s as a substring.
func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// Strings shows substrings, building, editing and escaping strings.
func (d *Demo) Strings() {
	s := "hello world"
	hello := s[0:5]
	world := s[6:11]
	d.r.Printf("s[0:5] = %q, s[6:11] = %q, s[:2] = %q, s[4:] = %q, s[:] = %q\n",
		hello, world, s[:2], s[4:], s[:])
	d.r.Printf("firstWord(%q) = %q\n", s, firstWord(s))

	// Slicing works the same on arrays and slices.
	a := []int{1, 2, 3, 4, 5}
	d.r.Printf("a[1:3] = %v\n", a[1:3])

	// Strings are immutable; strings.Builder appends without copying each time.
	var b strings.Builder
	b.WriteString("Hello ")
	b.WriteString("go")
	d.r.Printf("append string -> %s\n", b.String())
	b.WriteByte('!')
	d.r.Printf("append byte -> %s\n", b.String())

	// Insertion is concatenation around an index.
	ins := "Hello go!"
	ins = ins[:5] + "," + ins[5:]
	d.r.Printf("insert -> %s\n", ins)
	ins = ins[:6] + " I like" + ins[6:]
	d.r.Printf("insert string -> %s\n", ins)

	sentence := "I like go. Learning go is my favorite!"
	d.r.Printf("ReplaceAll -> %s\n", strings.ReplaceAll(sentence, "go", "GO"))
	d.r.Printf("Replace n=1 -> %s\n", strings.Replace(sentence, "go", "GO", 1))

	// Removing the last rune must respect UTF-8 boundaries.
	pop := "go pop 中文!"
	for i := 0; i < 2; i++ {
		r, size := utf8.DecodeLastRuneInString(pop)
		pop = pop[:len(pop)-size]
		d.r.Printf("popped %q, left %q\n", r, pop)
	}

	remove := "测试remove方法"
	d.r.Printf("%q takes %d bytes\n", remove, len(remove))
	_, size := utf8.DecodeRuneInString(remove)
	remove = remove[size:]
	d.r.Printf("remove first rune -> %q\n", remove)

	truncate := "测试truncate"
	d.r.Printf("truncate to 3 bytes -> %q\n", truncate[:3])

	toClear := "string clear"
	toClear = toClear[:0]
	d.r.Printf("cleared -> %q (len %d)\n", toClear, len(toClear))

	result := "hello " + "go"
	result = result + "!"
	result += "!!!"
	d.r.Printf("concatenate -> %s\n", result)

	// Escapes.
	byteEscape := "I'm writing \x47\x6f!"
	d.r.Printf("What are you doing\x3F (\\x3F means ?) %s\n", byteEscape)
	d.r.Printf("Unicode character %s (U+211D) is called %s\n", "ℝ", "\"DOUBLE-STRUCK CAPITAL R\"")

	// Raw strings keep backslashes and newlines as written.
	raw := `Escapes don't work here: \x3F ℝ`
	d.r.Println(raw)
	quotes := `And then I said: "There is no escape!"`
	d.r.Println(quotes)

	// range over a string yields runes; indexing yields bytes.
	for _, r := range "中国人" {
		d.r.Printf("%c ", r)
	}
	d.r.Println("")
	word := "中国人"
	for i := 0; i < len(word); i++ {
		d.r.Printf("%d ", word[i])
	}
	d.r.Println("")

	// Case mapping is language-aware in x/text.
	title := cases.Title(language.English)
	d.r.Printf("title case -> %s\n", title.String("the go programming language"))
	d.r.Printf("upper (turkish) -> %s\n", cases.Upper(language.Turkish).String("istanbul"))
}
