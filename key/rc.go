package key

// RC parameter identifiers. A theme's style dictionary is keyed by these;
// together they form the flat table of default visual settings applied
// globally to a plotting session.

// Font Defaults
const (
	FontSize      = "font.size"
	FontFamily    = "font.family"
	FontSansSerif = "font.sans-serif"
)

// Line And Marker Defaults
const (
	LinesColor           = "lines.color"
	LinesLinewidth       = "lines.linewidth"
	LinesMarkerFaceColor = "lines.markerfacecolor"
	LinesMarkerEdgeWidth = "lines.markeredgewidth"
	LinesMarkerSize      = "lines.markersize"
	LinesSolidCapstyle   = "lines.solid_capstyle"
	PatchLinewidth       = "patch.linewidth"
)

// Tick Defaults - sizing, spacing and coloring per axis.
const (
	XTickLabelSize  = "xtick.labelsize"
	XTickMajorPad   = "xtick.major.pad"
	XTickMajorWidth = "xtick.major.width"
	XTickMinorWidth = "xtick.minor.width"
	XTickColor      = "xtick.color"
	XTickDirection  = "xtick.direction"
	XTickMajorSize  = "xtick.major.size"
	XTickMinorSize  = "xtick.minor.size"
	YTickLabelSize  = "ytick.labelsize"
	YTickMajorPad   = "ytick.major.pad"
	YTickMajorWidth = "ytick.major.width"
	YTickMinorWidth = "ytick.minor.width"
	YTickColor      = "ytick.color"
	YTickDirection  = "ytick.direction"
	YTickMajorSize  = "ytick.major.size"
	YTickMinorSize  = "ytick.minor.size"
)

// Axes Defaults
const (
	AxesLabelSize  = "axes.labelsize"
	AxesTitleSize  = "axes.titlesize"
	AxesAxisBelow  = "axes.axisbelow"
	AxesEdgeColor  = "axes.edgecolor"
	AxesLabelColor = "axes.labelcolor"
	AxesFaceColor  = "axes.facecolor"
	AxesGrid       = "axes.grid"
	AxesGridAxis   = "axes.grid.axis"
	AxesGridWhich  = "axes.grid.which"
	AxesLinewidth  = "axes.linewidth"
)

// Figure Defaults
const (
	FigureFaceColor  = "figure.facecolor"
	FigureFigsize    = "figure.figsize"
	FigureDPI        = "figure.dpi"
	FigureAutolayout = "figure.autolayout"
)

// Save Defaults
const (
	SaveFigDPI         = "savefig.dpi"
	SaveFigFormat      = "savefig.format"
	SaveFigBBox        = "savefig.bbox"
	SaveFigTransparent = "savefig.transparent"
)

// Image Defaults
const (
	ImageCmap = "image.cmap"
)

// Legend Defaults
const (
	LegendFontSize      = "legend.fontsize"
	LegendNumPoints     = "legend.numpoints"
	LegendScatterPoints = "legend.scatterpoints"
	LegendFancybox      = "legend.fancybox"
	LegendLoc           = "legend.loc"
	LegendFrameOn       = "legend.frameon"
	LegendFrameAlpha    = "legend.framealpha"
	LegendFaceColor     = "legend.facecolor"
	LegendEdgeColor     = "legend.edgecolor"
)

// Text Defaults
const (
	TextColor = "text.color"
)
