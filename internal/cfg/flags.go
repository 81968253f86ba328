package cfg

import (
	"ytcli/internal/domain/consts"
	"ytcli/internal/domain/keys"
	"ytcli/internal/domain/paths"
	"ytcli/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initRequestFlags initializes the flags describing what to download.
func initRequestFlags(rootCmd *cobra.Command) error {
	rootCmd.Flags().StringP(keys.Output, "o", "", "Output filename without extension (yt-dlp picks the extension)")
	if err := viper.BindPFlag(keys.Output, rootCmd.Flags().Lookup(keys.Output)); err != nil {
		return err
	}

	rootCmd.Flags().BoolP(keys.AudioOnly, "a", false, "Download audio only")
	if err := viper.BindPFlag(keys.AudioOnly, rootCmd.Flags().Lookup(keys.AudioOnly)); err != nil {
		return err
	}

	rootCmd.Flags().StringP(keys.Quality, "q", models.DefaultQuality, "Quality: best, worst, a height like 720p, or a yt-dlp format selector")
	if err := viper.BindPFlag(keys.Quality, rootCmd.Flags().Lookup(keys.Quality)); err != nil {
		return err
	}

	rootCmd.Flags().StringP(keys.FileType, "t", "", "File type (mp4, webm, mp3, m4a, wav), defaults to mp4 or mp3 for audio")
	if err := viper.BindPFlag(keys.FileType, rootCmd.Flags().Lookup(keys.FileType)); err != nil {
		return err
	}

	rootCmd.Flags().StringP(keys.Dir, "P", "", "Directory to download into")
	if err := viper.BindPFlag(keys.Dir, rootCmd.Flags().Lookup(keys.Dir)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.DateAfter, "", "Only download videos uploaded on or after this date (e.g. 2024-01-31, today-2weeks)")
	if err := viper.BindPFlag(keys.DateAfter, rootCmd.Flags().Lookup(keys.DateAfter)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.DateBefore, "", "Only download videos uploaded on or before this date")
	return viper.BindPFlag(keys.DateBefore, rootCmd.Flags().Lookup(keys.DateBefore))
}

// initPlaylistFlags initializes playlist selection flags.
func initPlaylistFlags(rootCmd *cobra.Command) error {
	rootCmd.Flags().String(keys.PlaylistStart, "", "Playlist item to start at")
	if err := viper.BindPFlag(keys.PlaylistStart, rootCmd.Flags().Lookup(keys.PlaylistStart)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.PlaylistEnd, "", "Playlist item to end at")
	if err := viper.BindPFlag(keys.PlaylistEnd, rootCmd.Flags().Lookup(keys.PlaylistEnd)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.PlaylistItems, "", "Playlist items to download (e.g. 1,3,5-7)")
	if err := viper.BindPFlag(keys.PlaylistItems, rootCmd.Flags().Lookup(keys.PlaylistItems)); err != nil {
		return err
	}

	rootCmd.Flags().Bool(keys.IgnoreErrors, false, "Continue past playlist items that fail")
	return viper.BindPFlag(keys.IgnoreErrors, rootCmd.Flags().Lookup(keys.IgnoreErrors))
}

// initCookieFlags initializes authentication cookie flags.
func initCookieFlags(rootCmd *cobra.Command) error {
	rootCmd.Flags().String(keys.CookiePath, "", "Netscape cookies.txt file to pass to yt-dlp")
	if err := viper.BindPFlag(keys.CookiePath, rootCmd.Flags().Lookup(keys.CookiePath)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.CookieBrowser, "", "Browser yt-dlp should read cookies from (e.g. firefox)")
	return viper.BindPFlag(keys.CookieBrowser, rootCmd.Flags().Lookup(keys.CookieBrowser))
}

// initProgramFlags initializes program settings shared by every subcommand.
func initProgramFlags(rootCmd *cobra.Command) error {
	pf := rootCmd.PersistentFlags()

	pf.String(keys.YtdlpPath, "yt-dlp", "Path to the yt-dlp executable")
	if err := viper.BindPFlag(keys.YtdlpPath, pf.Lookup(keys.YtdlpPath)); err != nil {
		return err
	}

	pf.Duration(keys.Timeout, 0, "Give up on the download after this long (e.g. 30m), 0 waits forever")
	if err := viper.BindPFlag(keys.Timeout, pf.Lookup(keys.Timeout)); err != nil {
		return err
	}

	pf.Bool(keys.NoHistory, false, "Do not record this download in the history database")
	if err := viper.BindPFlag(keys.NoHistory, pf.Lookup(keys.NoHistory)); err != nil {
		return err
	}

	pf.String(keys.DBPath, paths.DBFilePath, "History database location")
	if err := viper.BindPFlag(keys.DBPath, pf.Lookup(keys.DBPath)); err != nil {
		return err
	}

	pf.IntP(keys.DebugLevel, "d", 0, "Set the logging level (0-5)")
	if err := viper.BindPFlag(keys.DebugLevel, pf.Lookup(keys.DebugLevel)); err != nil {
		return err
	}

	pf.String(keys.ConfigFile, "", "Config file (yaml, toml or json), defaults to ~/.ytcli/config.*")
	if err := viper.BindPFlag(keys.ConfigFile, pf.Lookup(keys.ConfigFile)); err != nil {
		return err
	}

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(consts.ProgramName + " {{.Version}}\n")
	return nil
}
