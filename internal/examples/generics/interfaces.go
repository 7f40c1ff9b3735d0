package generics

import (
	"fmt"
	"strings"
)

// Summary is implemented by anything that can describe itself briefly.
type Summary interface {
	Author() string
	Summarize() string
}

// ReadMore is the default summary built from Author.
func ReadMore(s interface{ Author() string }) string {
	return fmt.Sprintf("(Read more from %s...)", s.Author())
}

// Post is a long-form article.
type Post struct {
	Title    string
	Username string
	Content  string
}

func (p Post) Author() string { return p.Username }

// Summarize falls back to ReadMore.
func (p Post) Summarize() string { return ReadMore(p) }

// Tweet is a short message.
type Tweet struct {
	Username string
	Content  string
	Reply    bool
	Retweet  bool
}

func (t Tweet) Author() string { return "@" + t.Username }

func (t Tweet) Summarize() string {
	return fmt.Sprintf("%s: %s", t.Author(), t.Content)
}

// Notify accepts any Summary through an interface value.
func Notify(item Summary) string {
	return "Breaking news! " + item.Summarize()
}

// NotifyAll requires every element to share one concrete type.
func NotifyAll[T Summary](items ...T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = Notify(item)
	}
	return out
}

// Labeled combines a method requirement with fmt.Stringer.
type Labeled interface {
	Summary
	fmt.Stringer
}

func (t Tweet) String() string { return "tweet by " + t.Username }

// Describe requires both interfaces through Labeled.
func Describe[T Labeled](item T) string {
	return item.String() + " / " + item.Summarize()
}

// NewSummary returns a value only known by its interface.
func NewSummary() Summary {
	return Tweet{Username: "horse_ebooks", Content: "of course, as you probably already know, people"}
}

// Interfaces shows interfaces as behaviour contracts.
func (d *Demo) Interfaces() {
	tweet := Tweet{Username: "gopher", Content: "generics landed in 1.18"}
	post := Post{Title: "Penguins win", Username: "iceburgh", Content: "The Pittsburgh Penguins once again..."}

	d.r.Println(Notify(tweet))
	d.r.Println(Notify(post))
	d.r.Println(strings.Join(NotifyAll(tweet, Tweet{Username: "gerald", Content: "hi"}), "\n"))
	d.r.Println(Describe(tweet))
	d.r.Printf("1 new tweet: %s\n", NewSummary().Summarize())
}
