package entities

// Report summarizes one merge run.
type Report struct {
	Languages []string
	Rows      int // table rows read or produced
	Added     int // entries or cells created
	Updated   int // existing values changed
	Conflicts int // resolver invocations
	Skipped   int // conflicts resolved with Skip
}
