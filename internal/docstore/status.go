package docstore

import (
	"fmt"
	"io"

	"github.com/huangsam/typomatch/schema"
)

// PrintStoreStatus prints document store status information.
func PrintStoreStatus(w io.Writer, status schema.StoreStatus) {
	_, _ = fmt.Fprintf(w, "Store Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Location: %s\n", status.Location)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Documents: %d\n", status.TotalDocuments)
	if status.TotalDocuments > 0 {
		_, _ = fmt.Fprintf(w, "Last Update: %s\n", status.LastUpdateTime.Format("2006-01-02 15:04:05"))
		for _, name := range status.Documents {
			_, _ = fmt.Fprintf(w, "  %s\n", name)
		}
	}
	_, _ = fmt.Fprintf(w, "Size: %d bytes\n", status.SizeBytes)
}
