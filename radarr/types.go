package radarr

// Every type here mirrors an upstream Radarr v3 payload. Fields are
// optional by construction: a missing field decodes to its zero value and
// nothing in this package fills gaps in what upstream sends.

// Movie is a library entry, a lookup result, or a calendar entry
// depending on which endpoint produced it.
type Movie struct {
	ID               int64           `json:"id,omitempty"`
	Title            string          `json:"title,omitempty"`
	TitleSlug        string          `json:"titleSlug,omitempty"`
	Year             int             `json:"year,omitempty"`
	Overview         string          `json:"overview,omitempty"`
	Status           string          `json:"status,omitempty"`
	Monitored        bool            `json:"monitored,omitempty"`
	HasFile          bool            `json:"hasFile,omitempty"`
	Runtime          int             `json:"runtime,omitempty"`
	SizeOnDisk       int64           `json:"sizeOnDisk,omitempty"`
	QualityProfileID int64           `json:"qualityProfileId,omitempty"`
	QualityProfile   *QualityProfile `json:"qualityProfile,omitempty"`
	RootFolderPath   string          `json:"rootFolderPath,omitempty"`
	TmdbID           int64           `json:"tmdbId,omitempty"`
	ImdbID           string          `json:"imdbId,omitempty"`
	Images           []Image         `json:"images,omitempty"`
	Genres           []string        `json:"genres,omitempty"`
	Ratings          map[string]any  `json:"ratings,omitempty"`
	MovieFile        *MovieFile      `json:"movieFile,omitempty"`
	PhysicalRelease  string          `json:"physicalRelease,omitempty"`
	DigitalRelease   string          `json:"digitalRelease,omitempty"`
	InCinemas        string          `json:"inCinemas,omitempty"`
}

// Image is one artwork reference attached to a movie.
type Image struct {
	CoverType string `json:"coverType,omitempty"`
	URL       string `json:"url,omitempty"`
	RemoteURL string `json:"remoteUrl,omitempty"`
}

// MovieFile describes the file on disk for a downloaded movie.
type MovieFile struct {
	ID           int64          `json:"id,omitempty"`
	RelativePath string         `json:"relativePath,omitempty"`
	Size         int64          `json:"size,omitempty"`
	DateAdded    string         `json:"dateAdded,omitempty"`
	Quality      *Quality       `json:"quality,omitempty"`
	MediaInfo    map[string]any `json:"mediaInfo,omitempty"`
}

// Quality is the nested quality envelope Radarr wraps around a tier.
type Quality struct {
	Quality QualityRef `json:"quality"`
}

// QualityRef identifies a single quality tier.
type QualityRef struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// AddMovieOptions controls post-add behavior.
type AddMovieOptions struct {
	SearchForMovie bool `json:"searchForMovie"`
}

// AddMovieRequest is the body for creating a library entry.
type AddMovieRequest struct {
	Title            string           `json:"title,omitempty"`
	Year             int              `json:"year,omitempty"`
	TmdbID           int64            `json:"tmdbId,omitempty"`
	ImdbID           string           `json:"imdbId,omitempty"`
	TitleSlug        string           `json:"titleSlug,omitempty"`
	Images           []Image          `json:"images"`
	Runtime          int              `json:"runtime,omitempty"`
	Overview         string           `json:"overview,omitempty"`
	Genres           []string         `json:"genres"`
	Ratings          map[string]any   `json:"ratings"`
	QualityProfileID int64            `json:"qualityProfileId"`
	RootFolderPath   string           `json:"rootFolderPath"`
	Monitored        bool             `json:"monitored"`
	AddOptions       *AddMovieOptions `json:"addOptions,omitempty"`
}

// Release is one downloadable candidate returned by an interactive search.
type Release struct {
	GUID        string   `json:"guid,omitempty"`
	Title       string   `json:"title,omitempty"`
	Size        int64    `json:"size,omitempty"`
	Age         int      `json:"age,omitempty"`
	Seeders     int      `json:"seeders,omitempty"`
	Leechers    int      `json:"leechers,omitempty"`
	Quality     *Quality `json:"quality,omitempty"`
	Indexer     string   `json:"indexer,omitempty"`
	IndexerID   int64    `json:"indexerId,omitempty"`
	DownloadURL string   `json:"downloadUrl,omitempty"`
	Approved    bool     `json:"approved,omitempty"`
	Rejections  []string `json:"rejections,omitempty"`
}

// QueueItem is one in-flight or pending download.
type QueueItem struct {
	ID                      int64           `json:"id,omitempty"`
	Title                   string          `json:"title,omitempty"`
	Movie                   *Movie          `json:"movie,omitempty"`
	Size                    float64         `json:"size,omitempty"`
	SizeLeft                float64         `json:"sizeleft,omitempty"`
	Status                  string          `json:"status,omitempty"`
	Progress                float64         `json:"progress,omitempty"`
	EstimatedCompletionTime string          `json:"estimatedCompletionTime,omitempty"`
	Quality                 *Quality        `json:"quality,omitempty"`
	Protocol                string          `json:"protocol,omitempty"`
	DownloadClient          string          `json:"downloadClient,omitempty"`
	OutputPath              string          `json:"outputPath,omitempty"`
	StatusMessages          []StatusMessage `json:"statusMessages,omitempty"`
}

// StatusMessage carries upstream commentary on a queue item.
type StatusMessage struct {
	Title    string   `json:"title,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

// QueuePage is a paginated queue listing.
type QueuePage struct {
	Page         int         `json:"page,omitempty"`
	PageSize     int         `json:"pageSize,omitempty"`
	SortKey      string      `json:"sortKey,omitempty"`
	TotalRecords int         `json:"totalRecords,omitempty"`
	Records      []QueueItem `json:"records,omitempty"`
}

// WantedPage is a paginated missing-movies listing.
type WantedPage struct {
	Page         int     `json:"page,omitempty"`
	PageSize     int     `json:"pageSize,omitempty"`
	SortKey      string  `json:"sortKey,omitempty"`
	TotalRecords int     `json:"totalRecords,omitempty"`
	Records      []Movie `json:"records,omitempty"`
}

// HistoryRecord is one grab/import/delete event for a movie.
type HistoryRecord struct {
	EventType   string         `json:"eventType,omitempty"`
	Date        string         `json:"date,omitempty"`
	Quality     *Quality       `json:"quality,omitempty"`
	SourceTitle string         `json:"sourceTitle,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

// HistoryPage wraps history records for a movie.
type HistoryPage struct {
	Page         int             `json:"page,omitempty"`
	PageSize     int             `json:"pageSize,omitempty"`
	TotalRecords int             `json:"totalRecords,omitempty"`
	Records      []HistoryRecord `json:"records,omitempty"`
}

// QualityProfile is a named set of allowed quality tiers.
type QualityProfile struct {
	ID     int64         `json:"id,omitempty"`
	Name   string        `json:"name,omitempty"`
	Cutoff QualityRef    `json:"cutoff,omitempty"`
	Items  []ProfileItem `json:"items,omitempty"`
}

// ProfileItem is one entry of a quality profile.
type ProfileItem struct {
	Quality QualityRef `json:"quality,omitempty"`
	Allowed bool       `json:"allowed,omitempty"`
}

// RootFolder is a storage location movies can be added under.
type RootFolder struct {
	ID              int64            `json:"id,omitempty"`
	Path            string           `json:"path,omitempty"`
	Accessible      bool             `json:"accessible,omitempty"`
	FreeSpace       int64            `json:"freeSpace,omitempty"`
	UnmappedFolders []UnmappedFolder `json:"unmappedFolders,omitempty"`
}

// UnmappedFolder is a directory under a root folder with no library entry.
type UnmappedFolder struct {
	Name string `json:"name,omitempty"`
	Path string `json:"path,omitempty"`
}

// Indexer is a configured release source.
type Indexer struct {
	ID                      int64   `json:"id,omitempty"`
	Name                    string  `json:"name,omitempty"`
	Implementation          string  `json:"implementation,omitempty"`
	EnableRss               bool    `json:"enableRss,omitempty"`
	EnableAutomaticSearch   bool    `json:"enableAutomaticSearch,omitempty"`
	EnableInteractiveSearch bool    `json:"enableInteractiveSearch,omitempty"`
	Priority                int     `json:"priority,omitempty"`
	Tags                    []int64 `json:"tags,omitempty"`
}

// SystemStatus is the upstream instance description.
type SystemStatus struct {
	Version           string `json:"version,omitempty"`
	BuildTime         string `json:"buildTime,omitempty"`
	IsDebug           bool   `json:"isDebug,omitempty"`
	IsProduction      bool   `json:"isProduction,omitempty"`
	IsAdmin           bool   `json:"isAdmin,omitempty"`
	IsUserInteractive bool   `json:"isUserInteractive,omitempty"`
	StartupPath       string `json:"startupPath,omitempty"`
	AppData           string `json:"appData,omitempty"`
	OsName            string `json:"osName,omitempty"`
	OsVersion         string `json:"osVersion,omitempty"`
	IsMonoRuntime     bool   `json:"isMonoRuntime,omitempty"`
	IsMono            bool   `json:"isMono,omitempty"`
	IsLinux           bool   `json:"isLinux,omitempty"`
	IsWindows         bool   `json:"isWindows,omitempty"`
	Mode              string `json:"mode,omitempty"`
	Branch            string `json:"branch,omitempty"`
	Authentication    string `json:"authentication,omitempty"`
	SqliteVersion     string `json:"sqliteVersion,omitempty"`
	MigrationVersion  int    `json:"migrationVersion,omitempty"`
	URLBase           string `json:"urlBase,omitempty"`
	RuntimeVersion    string `json:"runtimeVersion,omitempty"`
}

// HealthCheck is one entry of the upstream health report.
type HealthCheck struct {
	Source  string `json:"source,omitempty"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message,omitempty"`
	WikiURL string `json:"wikiUrl,omitempty"`
}

// DiskSpace describes one mounted volume visible to upstream.
type DiskSpace struct {
	Path       string `json:"path,omitempty"`
	Label      string `json:"label,omitempty"`
	FreeSpace  int64  `json:"freeSpace,omitempty"`
	TotalSpace int64  `json:"totalSpace,omitempty"`
}
