package markup

import (
	"html"
	"regexp"
	"strings"
)

const (
	preStyle        = `background:#1a1a1a;padding:10px;border-radius:4px;overflow-x:auto;margin:10px 0;`
	codeStyle       = `background:#1a1a1a;padding:2px 4px;border-radius:3px;`
	blockquoteStyle = `border-left:4px solid #555;margin:5px 0 5px 10px;padding-left:10px;color:#aaa;`
	imageStyle      = `max-width:100%;border-radius:4px;margin:10px 0;`
	spoilerStyle    = `background:#555;color:#555;`
)

var (
	giphyRe    = regexp.MustCompile(`!\[gif\]\(giphy\|([^)]+)\)`)
	imageRe    = regexp.MustCompile(`!\[img\]\(([^)]+)\)`)
	bareURLRe  = regexp.MustCompile(`\(?\bhttps?://[^\s)]+`)
	videoExtRe = regexp.MustCompile(`(?i)\.(?:mp4|webm|ogv|mov|m4v)(?:[?#].*)?$`)
	imageExtRe = regexp.MustCompile(`(?i)\.(?:png|jpe?g|gif|webp|bmp)(?:[?#].*)?$`)

	codeSpanRe = regexp.MustCompile("`([^`]+)`")
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldStarRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldLowRe  = regexp.MustCompile(`__([^_]+)__`)
	emStarRe   = regexp.MustCompile(`\*([^*]+)\*`)
	emLowRe    = regexp.MustCompile(`_([^_]+)_`)
	strikeRe   = regexp.MustCompile(`~~([^~]+)~~`)
	supRe      = regexp.MustCompile(`\^(\w+)`)
	spoilerRe  = regexp.MustCompile(`&gt;!([^!]+)!&lt;`)

	tagRe          = regexp.MustCompile(`<[^>]+>`)
	openCodeTagRe  = regexp.MustCompile(`^<(?:code|pre)\b`)
	closeCodeTagRe = regexp.MustCompile(`^</(?:code|pre)\b`)
	openAnchorRe   = regexp.MustCompile(`^<a\b`)
	closeAnchorRe  = regexp.MustCompile(`^</a\b`)
	mentionRe      = regexp.MustCompile(`([ru])/(\w{2,21})`)
)

// FormatContent renders user-authored markup as safe HTML. The input is
// escaped first, so markup substitutions only ever see entity-encoded
// text. Deterministic, no I/O; empty input yields empty output.
func FormatContent(text string) string {
	if text == "" {
		return ""
	}

	text = html.EscapeString(text)

	// giphy embeds: ![gif](giphy|ID) or ![gif](giphy|ID|downsized)
	text = giphyRe.ReplaceAllStringFunc(text, func(match string) string {
		id := giphyRe.FindStringSubmatch(match)[1]
		id = strings.SplitN(id, "|", 2)[0]
		return `<div class="giphy-container" style="margin:10px 0;">` +
			`<img src="https://media.giphy.com/media/` + id + `/giphy.gif" ` +
			`alt="GIF" class="comment-media" ` +
			`style="max-width:100%;border-radius:4px;" loading="lazy">` +
			`</div>`
	})

	// embedded images: ![img](url), unescaping the URL so &amp; inside
	// query strings survives as a plain &
	text = imageRe.ReplaceAllStringFunc(text, func(match string) string {
		url := html.UnescapeString(imageRe.FindStringSubmatch(match)[1])
		return imgTag(url)
	})

	text = replaceBareMediaURLs(text)

	lines := strings.Split(text, "\n")
	var formatted []string
	inCodeBlock := false
	var codeBlockLines []string

	for _, line := range lines {
		stripped := strings.TrimSpace(line)

		// code blocks (4 spaces or tab)
		if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLines = nil
			}
			content := line[1:]
			if strings.HasPrefix(line, "    ") {
				content = line[4:]
			}
			codeBlockLines = append(codeBlockLines, html.EscapeString(content))
			continue
		} else if inCodeBlock {
			formatted = append(formatted, codeBlock(codeBlockLines))
			inCodeBlock = false
			codeBlockLines = nil
		}

		switch {
		case strings.HasPrefix(stripped, "&gt;"):
			content := strings.TrimSpace(stripped[4:])
			content = applyInlineFormatting(content)
			formatted = append(formatted,
				`<blockquote style="`+blockquoteStyle+`">`+content+`</blockquote>`)
		case stripped == "":
			formatted = append(formatted, "<br>")
		default:
			formatted = append(formatted, applyInlineFormatting(line)+"<br>")
		}
	}

	if inCodeBlock {
		formatted = append(formatted, codeBlock(codeBlockLines))
	}

	return strings.Join(formatted, "")
}

func codeBlock(lines []string) string {
	return `<pre style="` + preStyle + `"><code>` + strings.Join(lines, "\n") + `</code></pre>`
}

func imgTag(url string) string {
	return `<img src="` + url + `" alt="Image" class="comment-media" ` +
		`style="` + imageStyle + `" loading="lazy">`
}

// replaceBareMediaURLs turns loose http(s) URLs into inline <video> or
// <img> tags when they look like media. URLs preceded by an opening
// parenthesis sit inside a markdown link and are left alone; so is
// anything not recognizable as media (the link rule picks those up
// later).
func replaceBareMediaURLs(text string) string {
	return bareURLRe.ReplaceAllStringFunc(text, func(match string) string {
		if strings.HasPrefix(match, "(") {
			return match
		}
		url := html.UnescapeString(match)
		if videoExtRe.MatchString(url) {
			return `<video class="comment-media" controls playsinline preload="metadata" ` +
				`src="` + url + `"></video>`
		}
		if strings.Contains(url, "preview.redd.it") || imageExtRe.MatchString(url) {
			return imgTag(url)
		}
		return match
	})
}

func applyInlineFormatting(text string) string {
	// inline code: `code`
	text = codeSpanRe.ReplaceAllString(text,
		`<code style="`+codeStyle+`">$1</code>`)

	// links: [text](url), unescaping the URL for &amp; in query strings
	text = linkRe.ReplaceAllStringFunc(text, func(match string) string {
		groups := linkRe.FindStringSubmatch(match)
		url := html.UnescapeString(groups[2])
		return `<a href="` + url + `" target="_blank" style="color:#4a9eff;">` + groups[1] + `</a>`
	})

	// bold: **text** or __text__
	text = boldStarRe.ReplaceAllString(text, `<strong>$1</strong>`)
	text = boldLowRe.ReplaceAllString(text, `<strong>$1</strong>`)

	// italic: *text* or _text_, not in the middle of a word
	text = replaceOutsideWords(text, emStarRe, "<em>", "</em>")
	text = replaceOutsideWords(text, emLowRe, "<em>", "</em>")

	// strikethrough: ~~text~~
	text = strikeRe.ReplaceAllString(text, `<del>$1</del>`)

	// superscript: ^text
	text = supRe.ReplaceAllString(text, `<sup>$1</sup>`)

	// spoilers: >!text!<
	text = spoilerRe.ReplaceAllString(text,
		`<span style="`+spoilerStyle+`" title="Spoiler (hover to reveal)">$1</span>`)

	return linkifyMentions(text)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// replaceOutsideWords wraps every match of re in open/close tags, skipping
// matches whose delimiters touch a word character on the outside. RE2 has
// no lookbehind, so the boundary check is done on match indexes instead.
func replaceOutsideWords(text string, re *regexp.Regexp, open, close string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && isWordByte(text[start-1]) {
			continue
		}
		if end < len(text) && isWordByte(text[end]) {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(open)
		b.WriteString(text[m[2]:m[3]])
		b.WriteString(close)
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

// linkifyMentions turns r/name and u/name tokens into internal links.
// Text already inside <code>/<pre> or inside an anchor's visible text is
// passed through untouched, tracked by scanning tag tokens.
func linkifyMentions(text string) string {
	var out strings.Builder
	inCode := 0
	inAnchor := 0
	pos := 0

	flush := func(segment string) {
		if inCode > 0 || inAnchor > 0 {
			out.WriteString(segment)
			return
		}
		out.WriteString(replaceMentions(segment))
	}

	for _, loc := range tagRe.FindAllStringIndex(text, -1) {
		flush(text[pos:loc[0]])
		tag := strings.ToLower(text[loc[0]:loc[1]])
		switch {
		case openCodeTagRe.MatchString(tag):
			inCode++
		case closeCodeTagRe.MatchString(tag):
			if inCode > 0 {
				inCode--
			}
		}
		switch {
		case openAnchorRe.MatchString(tag):
			inAnchor++
		case closeAnchorRe.MatchString(tag):
			if inAnchor > 0 {
				inAnchor--
			}
		}
		out.WriteString(text[loc[0]:loc[1]])
		pos = loc[1]
	}
	flush(text[pos:])

	return out.String()
}

func replaceMentions(text string) string {
	matches := mentionRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		// must not chain off a word character or a path segment
		if start > 0 && (isWordByte(text[start-1]) || text[start-1] == '/') {
			continue
		}
		kind := text[m[2]:m[3]]
		name := text[m[4]:m[5]]
		b.WriteString(text[last:start])
		b.WriteString(`<a href="/` + kind + `/` + name + `" class="mention-link">` + kind + `/` + name + `</a>`)
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}
