package query

// List returns the labels of the first record of the source named by args,
// sorted byte-wise. Only the header line is read.
func (e *Engine) List(args []string) ([]string, error) {
	src, cleanup, err := e.open(args)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	rec, err := e.head(src)
	if err != nil {
		return nil, err
	}
	return rec.Labels(), nil
}
