package archive

import (
	"fmt"
	"strconv"
)

// requiredPayloadKeys are the string fields every indexed point must carry.
var requiredPayloadKeys = []string{
	"pub_date", "link_to_pdf", "volume", "issue", "author", "title", "page", "text",
}

// EntryFromPayload validates the dynamic payload of a vector-search hit and
// converts it into an ArchiveEntry. Payload shapes cross a service boundary,
// so every field is checked structurally instead of trusted. Returns false
// when any required field is missing or has the wrong type.
func EntryFromPayload(payload map[string]any) (ArchiveEntry, bool) {
	fields := make(map[string]string, len(requiredPayloadKeys))
	for _, key := range requiredPayloadKeys {
		s, ok := payload[key].(string)
		if !ok {
			return ArchiveEntry{}, false
		}
		fields[key] = s
	}

	entry := ArchiveEntry{
		Author:          fields["author"],
		Title:           fields["title"],
		PublicationDate: fields["pub_date"],
		Volume:          fields["volume"],
		Issue:           fields["issue"],
		Page:            fields["page"],
		DocumentLink:    fields["link_to_pdf"],
		FullText:        fields["text"],
	}

	// id is optional and appears as either a string or a number depending on
	// how the point was ingested.
	if raw, ok := payload["id"]; ok {
		switch v := raw.(type) {
		case string:
			entry.ID = v
		case int64:
			entry.ID = strconv.FormatInt(v, 10)
		case float64:
			entry.ID = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return ArchiveEntry{}, false
		}
	}

	return entry, true
}

// String returns a short bibliographic form used in logs.
func (e ArchiveEntry) String() string {
	return fmt.Sprintf("%s, %q (%s)", e.Author, e.Title, e.PublicationDate)
}
