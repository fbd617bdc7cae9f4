package review

import (
	"net/url"
	"strings"
)

const (
	MaxDescriptionLength = 1000
	MaxReplyLength       = 1000
	MaxImages            = 5
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Description struct {
	text string
}

func NewDescription(s string) (Description, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Description{}, ErrEmptyDescription
	}
	if len(t) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{text: t}, nil
}

func (d Description) String() string { return d.text }

// Images holds absolute http(s) URLs of uploaded review photos.
type Images struct {
	urls []string
}

func NewImages(raw []string) (Images, error) {
	if len(raw) > MaxImages {
		return Images{}, ErrTooManyImages
	}
	urls := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		u, err := url.Parse(r)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Images{}, ErrInvalidImageURL
		}
		urls = append(urls, r)
	}
	return Images{urls: urls}, nil
}

func (i Images) URLs() []string {
	out := make([]string, len(i.urls))
	copy(out, i.urls)
	return out
}

func (i Images) Len() int { return len(i.urls) }

type OwnerReply struct {
	text string
}

func NewOwnerReply(s string) (OwnerReply, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return OwnerReply{}, ErrEmptyReply
	}
	if len(t) > MaxReplyLength {
		return OwnerReply{}, ErrReplyTooLong
	}
	return OwnerReply{text: t}, nil
}

func (r OwnerReply) String() string { return r.text }
