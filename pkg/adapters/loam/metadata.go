package loam

// ManualMetadata is the frontmatter of a manual document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type ManualMetadata struct {
	ID    string `json:"id" mapstructure:"id"`
	Title string `json:"title" mapstructure:"title"`
	// Strategy optionally pins the synthesis strategy ("linear", "branching").
	Strategy string   `json:"strategy,omitempty" mapstructure:"strategy"`
	Tags     []string `json:"tags,omitempty" mapstructure:"tags"`
}
