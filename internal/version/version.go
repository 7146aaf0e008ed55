package version

const VERSION = "v1.0.0"

const UPDATE_MESSAGE = "To update, run 'go install github.com/yterada/cctrans/cmd/cctrans@main'."
