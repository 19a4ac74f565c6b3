package games

// Game is one entry of the hub's game catalog. Games are opaque
// client-side content; the server only knows the route and display title.
type Game struct {
	Slug  string // URL path component, e.g. "snake"
	Title string // display title and play-tracking identifier
}

// Catalog lists every game page the hub serves. Each entry becomes a
// session-gated route; adding a game here is the whole server-side change.
var Catalog = []Game{
	{Slug: "2048", Title: "2048"},
	{Slug: "checkers", Title: "Checkers"},
	{Slug: "chess", Title: "Chess"},
	{Slug: "contra", Title: "Contra"},
	{Slug: "flappy", Title: "Flappy Bird"},
	{Slug: "galaxy", Title: "Galaxy Shooter"},
	{Slug: "hand", Title: "Hand Cricket"},
	{Slug: "ludo", Title: "Ludo"},
	{Slug: "mario", Title: "Mario"},
	{Slug: "maze", Title: "Maze Runner"},
	{Slug: "memory", Title: "Memory Match"},
	{Slug: "mine", Title: "Minesweeper"},
	{Slug: "monopoly", Title: "Monopoly"},
	{Slug: "nokiagame", Title: "Nokia Snake"},
	{Slug: "rabbit", Title: "Rabbit Run"},
	{Slug: "rps", Title: "Rock Paper Scissors"},
	{Slug: "snake", Title: "Snake"},
	{Slug: "snakeandladder", Title: "Snakes and Ladders"},
	{Slug: "solitaire", Title: "Solitaire"},
	{Slug: "tetra", Title: "Tetra"},
	{Slug: "tictactoe", Title: "Tic Tac Toe"},
	{Slug: "truth", Title: "Truth or Dare"},
	{Slug: "water", Title: "Water Sort"},
	{Slug: "whackamole", Title: "Whack-a-Mole"},
	{Slug: "word", Title: "Word Guess"},
}

// GameBySlug looks up a catalog entry by its route slug
func GameBySlug(slug string) (Game, bool) {
	for _, g := range Catalog {
		if g.Slug == slug {
			return g, true
		}
	}
	return Game{}, false
}
